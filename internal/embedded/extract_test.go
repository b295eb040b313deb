package embedded

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/fbkclanna/rustlings/internal/cargo"
	"github.com/fbkclanna/rustlings/internal/testutil"
)

func TestFSExtractor_copiesTree(t *testing.T) {
	fsys := fstest.MapFS{
		"exercises/intro1.rs":        {Data: []byte("fn main() {}\n")},
		"exercises/topicA/ex2.rs":    {Data: []byte("// ex2\n")},
		"exercises/topicA/README.md": {Data: []byte("# topic A\n")},
		"other/ignored.txt":          {Data: []byte("x")},
	}
	root := t.TempDir()
	var out bytes.Buffer

	ex := &FSExtractor{FS: fsys, Dir: "exercises", Out: &out}
	if err := ex.InitExercisesDir(root); err != nil {
		t.Fatalf("InitExercisesDir() error: %v", err)
	}

	if got := testutil.ReadFile(t, filepath.Join(root, "exercises", "topicA", "ex2.rs")); got != "// ex2\n" {
		t.Errorf("ex2.rs = %q", got)
	}
	if testutil.Exists(filepath.Join(root, "other")) || testutil.Exists(filepath.Join(root, "exercises", "other")) {
		t.Error("files outside Dir must not be copied")
	}
	if !strings.Contains(out.String(), "[3/3]") {
		t.Errorf("expected progress for 3 files, got:\n%s", out.String())
	}
}

func TestFSExtractor_dirRoot(t *testing.T) {
	src := t.TempDir()
	testutil.WriteFile(t, filepath.Join(src, "intro1.rs"), "fn main() {}\n")
	testutil.WriteFile(t, filepath.Join(src, "topicA", "ex2.rs"), "fn main() {}\n")
	root := t.TempDir()

	ex := &FSExtractor{FS: os.DirFS(src), Dir: "."}
	if err := ex.InitExercisesDir(root); err != nil {
		t.Fatalf("InitExercisesDir() error: %v", err)
	}
	for _, p := range []string{"intro1.rs", "topicA/ex2.rs"} {
		if !testutil.Exists(filepath.Join(root, "exercises", filepath.FromSlash(p))) {
			t.Errorf("exercises/%s missing", p)
		}
	}
}

func TestFSExtractor_existingExercisesDir(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "exercises"), 0700); err != nil {
		t.Fatal(err)
	}

	err := Default(nil).InitExercisesDir(root)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("InitExercisesDir() error = %v, want fs.ErrExist", err)
	}
}

func TestFSExtractor_missingSource(t *testing.T) {
	ex := &FSExtractor{FS: fstest.MapFS{}, Dir: "exercises"}
	if err := ex.InitExercisesDir(t.TempDir()); err == nil {
		t.Fatal("expected error when the source tree is missing")
	}
}

func TestDefault_matchesCatalog(t *testing.T) {
	c, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	if len(c.Exercises) == 0 {
		t.Fatal("embedded catalog is empty")
	}

	root := t.TempDir()
	if err := Default(nil).InitExercisesDir(root); err != nil {
		t.Fatalf("InitExercisesDir() error: %v", err)
	}
	for _, info := range c.Exercises {
		p := filepath.Join(root, filepath.FromSlash(cargo.BinPath(info)))
		if !testutil.Exists(p) {
			t.Errorf("%s listed in info.toml but not embedded", cargo.BinPath(info))
		}
	}
}
