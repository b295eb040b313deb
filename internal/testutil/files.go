// Package testutil holds fixtures shared by the package tests: a fake
// exercise extractor, file helpers and git helpers.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile creates path (and its parent directories) with content.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// ReadFile returns the content of path, failing the test if it is missing.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Snapshot records the modification time of every entry below root,
// keyed by slash-separated relative path.
func Snapshot(t *testing.T, root string) map[string]time.Time {
	t.Helper()
	snap := make(map[string]time.Time)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		snap[filepath.ToSlash(rel)] = info.ModTime()
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot of %s: %v", root, err)
	}
	return snap
}

// AssertUnchanged fails the test if root differs from an earlier Snapshot.
func AssertUnchanged(t *testing.T, root string, before map[string]time.Time) {
	t.Helper()
	after := Snapshot(t, root)
	if len(after) != len(before) {
		t.Errorf("entry count changed: before=%d after=%d (%v)", len(before), len(after), keys(after))
	}
	for p, mt := range before {
		got, ok := after[p]
		if !ok {
			t.Errorf("%s was removed", p)
			continue
		}
		if !got.Equal(mt) {
			t.Errorf("%s was modified", p)
		}
	}
}

func keys(m map[string]time.Time) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
