package embedded

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/fbkclanna/rustlings/internal/exercise"
)

//go:embed info.toml exercises
var files embed.FS

// Default returns an extractor over the compiled-in exercises. Progress lines
// are written to out when it is non-nil.
func Default(out io.Writer) *FSExtractor {
	return &FSExtractor{FS: files, Dir: "exercises", Out: out}
}

// Catalog parses the compiled-in info.toml.
func Catalog() (*exercise.Catalog, error) {
	data, err := fs.ReadFile(files, "info.toml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded info.toml: %w", err)
	}
	return exercise.ParseTOML(data)
}
