package workspace

import (
	"fmt"
	"os"
)

// GitignoreContent keeps build output and local progress out of version control.
const GitignoreContent = "/target\n/.rustlings-state.json\n"

// ExtensionsContent recommends rust-analyzer to VS Code users.
const ExtensionsContent = `{"recommendations":["rust-lang.rust-analyzer"]}`

// WriteNew creates path and writes data to it. It fails if path already exists.
func WriteNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644) //nolint:gosec // workspace files need to be readable
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeAuxFiles(l *Layout) error {
	if err := WriteNew(l.Gitignore, []byte(GitignoreContent)); err != nil {
		return fmt.Errorf("failed to create the file `%s/%s`: %w", DirName, GitignoreFile, err)
	}
	if err := writeVSCodeDir(l); err != nil {
		return fmt.Errorf("failed to create the file `%s/%s/%s`: %w", DirName, VSCodeDir, ExtensionsFile, err)
	}
	return nil
}

func writeVSCodeDir(l *Layout) error {
	if err := os.Mkdir(l.VSCodeDir, 0755); err != nil { //nolint:gosec // editor settings need to be readable
		return fmt.Errorf("failed to create the directory `%s`: %w", VSCodeDir, err)
	}
	return WriteNew(l.Extensions, []byte(ExtensionsContent))
}
