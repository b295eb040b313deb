package testutil

import (
	"os"
	"path/filepath"
)

// FakeExtractor records calls and writes one placeholder source per file in
// Files (slash-separated, relative to exercises/).
type FakeExtractor struct {
	Files []string
	Err   error
	// Before runs first with the workspace root; a non-nil error aborts.
	Before func(root string) error
	Calls  []string
}

// InitExercisesDir implements the extractor used by workspace.Init.
func (f *FakeExtractor) InitExercisesDir(root string) error {
	f.Calls = append(f.Calls, root)
	if f.Before != nil {
		if err := f.Before(root); err != nil {
			return err
		}
	}
	if f.Err != nil {
		return f.Err
	}
	dir := filepath.Join(root, "exercises")
	if err := os.Mkdir(dir, 0755); err != nil { //nolint:gosec // test directory
		return err
	}
	for _, name := range f.Files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil { //nolint:gosec // test directory
			return err
		}
		if err := os.WriteFile(p, []byte("fn main() {}\n"), 0644); err != nil { //nolint:gosec // test file
			return err
		}
	}
	return nil
}
