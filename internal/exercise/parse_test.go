package exercise

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseTOML_valid(t *testing.T) {
	data := []byte(`
format_version = 1
welcome_message = "hi"

[[exercises]]
name = "intro1"
dir = "00_intro"
test = false
hint = "no hint"

[[exercises]]
name = "variables1"
dir = "01_variables"

[[exercises]]
name = "quiz1"
`)
	c, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Exercises) != 3 {
		t.Fatalf("exercises count = %d, want 3", len(c.Exercises))
	}
	if c.Exercises[0].Name != "intro1" || c.Exercises[0].Dir != "00_intro" {
		t.Errorf("exercises[0] = %+v", c.Exercises[0])
	}
	if c.Exercises[2].HasDir() {
		t.Errorf("quiz1 should have no dir, got %q", c.Exercises[2].Dir)
	}
}

func TestParseTOML_invalidSyntax(t *testing.T) {
	if _, err := ParseTOML([]byte("[[exercises]\nname = ")); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestParseYAML_valid(t *testing.T) {
	data := []byte(`
exercises:
  - name: intro1
  - name: ex2
    dir: topicA
`)
	c, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.Names()
	if len(got) != 2 || got[0] != "intro1" || got[1] != "ex2" {
		t.Errorf("names = %v, want [intro1 ex2]", got)
	}
	if c.Exercises[1].Dir != "topicA" {
		t.Errorf("dir = %q, want %q", c.Exercises[1].Dir, "topicA")
	}
}

func TestParseJSON_withComments(t *testing.T) {
	data := []byte(`{
  // generated by hand
  "exercises": [
    {"name": "intro1"},
    {"name": "ex2", "dir": "topicA"},
  ]
}`)
	c, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Exercises) != 2 {
		t.Fatalf("exercises count = %d, want 2", len(c.Exercises))
	}
}

func TestParse_emptyCatalog(t *testing.T) {
	c, err := ParseYAML([]byte("exercises: []\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Exercises) != 0 {
		t.Errorf("exercises count = %d, want 0", len(c.Exercises))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		infos []Info
		err   bool
	}{
		{"empty", nil, false},
		{"plain", []Info{{Name: "intro1"}}, false},
		{"with dir", []Info{{Name: "ex2", Dir: "topicA"}}, false},
		{"nested dir", []Info{{Name: "ex3", Dir: "a/b_c"}}, false},
		{"missing name", []Info{{Dir: "topicA"}}, true},
		{"quote in name", []Info{{Name: `bad"name`}}, true},
		{"separator in name", []Info{{Name: "a/b"}}, true},
		{"dot dot dir", []Info{{Name: "ex", Dir: "../outside"}}, true},
		{"absolute dir", []Info{{Name: "ex", Dir: "/etc"}}, true},
		{"trailing slash dir", []Info{{Name: "ex", Dir: "topicA/"}}, true},
		{"backslash dir", []Info{{Name: "ex", Dir: `a\b`}}, true},
		{"duplicate", []Info{{Name: "ex"}, {Name: "ex", Dir: "other"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.infos)
			if (err != nil) != tt.err {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.err)
			}
			if err != nil && !errors.Is(err, ErrInvalidExercise) {
				t.Errorf("error %v should wrap ErrInvalidExercise", err)
			}
		})
	}
}

func TestLoad_dispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"info.toml":  "[[exercises]]\nname = \"intro1\"\n",
		"info.yaml":  "exercises:\n  - name: intro1\n",
		"info.jsonc": `{"exercises": [{"name": "intro1"}]}`,
		"info.ini":   "name=intro1",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{"info.toml", "info.yaml", "info.jsonc"} {
		c, err := Load(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("Load(%s) error: %v", name, err)
			continue
		}
		if len(c.Exercises) != 1 || c.Exercises[0].Name != "intro1" {
			t.Errorf("Load(%s) = %+v", name, c.Exercises)
		}
	}

	if _, err := Load(filepath.Join(dir, "info.ini")); err == nil {
		t.Error("Load() should reject unknown extensions")
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "info.toml")); err == nil {
		t.Fatal("Load() should fail when the file is missing")
	}
}
