package embedded

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fbkclanna/rustlings/internal/ui"
	"github.com/fbkclanna/rustlings/internal/workspace"
)

// FSExtractor materializes the tree at Dir inside FS as <root>/exercises.
type FSExtractor struct {
	FS  fs.FS
	Dir string // "." when FS is the exercises directory itself
	Out io.Writer
}

var _ workspace.Extractor = (*FSExtractor)(nil)

// InitExercisesDir creates <root>/exercises and copies every file and
// sub-directory into it. Nothing is overwritten: the exercises directory and
// every file are created exclusively.
func (e *FSExtractor) InitExercisesDir(root string) error {
	src := e.Dir
	if src == "" {
		src = "."
	}

	total, err := countFiles(e.FS, src)
	if err != nil {
		return err
	}
	var progress *ui.Progress
	if e.Out != nil {
		progress = ui.NewProgress(e.Out, total)
	}

	return fs.WalkDir(e.FS, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := path.Join(workspace.ExercisesDir, relPath(src, p))
		dest := filepath.Join(root, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.Mkdir(dest, 0755); err != nil { //nolint:gosec // exercise dirs need to be world-readable
				return fmt.Errorf("creating directory %s: %w", rel, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := fs.ReadFile(e.FS, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		if err := workspace.WriteNew(dest, data); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}
		if progress != nil {
			progress.Done(rel)
		}
		return nil
	})
}

func countFiles(fsys fs.FS, src string) (int, error) {
	n := 0
	err := fs.WalkDir(fsys, src, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scanning exercise sources: %w", err)
	}
	return n, nil
}

// relPath returns p relative to src. Both are slash-separated fs.FS paths.
func relPath(src, p string) string {
	if src == "." {
		return p
	}
	return strings.TrimPrefix(strings.TrimPrefix(p, src), "/")
}
