package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fbkclanna/rustlings/internal/cargo"
	"github.com/fbkclanna/rustlings/internal/exercise"
)

// Names of the artifacts inside a workspace.
const (
	DirName        = "rustlings"
	ExercisesDir   = "exercises"
	GitignoreFile  = ".gitignore"
	VSCodeDir      = ".vscode"
	ExtensionsFile = "extensions.json"
)

//nolint:staticcheck // user-facing diagnostic, printed as is
var (
	// ErrAlreadyInitialized means the base directory already looks like a workspace.
	ErrAlreadyInitialized = errors.New("A directory with the name `exercises` and a file with the name `Cargo.toml` already exist\n" +
		"in the current directory. It looks like Rustlings was already initialized here.\n" +
		"Run `rustlings` for instructions on getting started with the exercises.\n\n" +
		"If you didn't already initialize Rustlings, please initialize it in another directory.")

	// ErrWorkspaceExists means the rustlings directory is already taken.
	ErrWorkspaceExists = errors.New("A directory with the name `rustlings` already exists in the current directory.\n" +
		"You probably already initialized Rustlings.\n" +
		"Run `cd rustlings`\n" +
		"Then run `rustlings` again")
)

// Extractor materializes <root>/exercises with every exercise source file.
type Extractor interface {
	InitExercisesDir(root string) error
}

// Layout holds the absolute paths of every artifact Init produces.
type Layout struct {
	Base         string
	Root         string
	ExercisesDir string
	ManifestPath string
	Gitignore    string
	VSCodeDir    string
	Extensions   string
}

// NewLayout resolves the workspace paths below base.
func NewLayout(base string) (*Layout, error) {
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory: %w", err)
	}
	root := filepath.Join(base, DirName)
	return &Layout{
		Base:         base,
		Root:         root,
		ExercisesDir: filepath.Join(root, ExercisesDir),
		ManifestPath: filepath.Join(root, cargo.FileName),
		Gitignore:    filepath.Join(root, GitignoreFile),
		VSCodeDir:    filepath.Join(root, VSCodeDir),
		Extensions:   filepath.Join(root, VSCodeDir, ExtensionsFile),
	}, nil
}

// Files returns the workspace-relative paths Init writes itself, in order.
func (l *Layout) Files() []string {
	return []string{
		cargo.FileName,
		GitignoreFile,
		VSCodeDir + "/" + ExtensionsFile,
	}
}

type options struct {
	logger *slog.Logger
	dryRun bool
}

// Option configures Init.
type Option func(*options)

// WithLogger sets the logger used for stage transitions.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDryRun makes Init stop after the collision checks without writing.
func WithDryRun() Option {
	return func(o *options) { o.dryRun = true }
}

// Init creates the workspace below base. The first failing step aborts the
// remaining ones; files written before the failure are left in place.
func Init(base string, infos []exercise.Info, ex Extractor, opts ...Option) (*Layout, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if ex == nil {
		return nil, errors.New("workspace: no exercise extractor")
	}

	layout, err := NewLayout(base)
	if err != nil {
		return nil, err
	}
	log := o.logger.With("root", layout.Root)

	if isDir(filepath.Join(layout.Base, ExercisesDir)) && isFile(filepath.Join(layout.Base, cargo.FileName)) {
		return nil, ErrAlreadyInitialized
	}
	if err := exercise.Validate(infos); err != nil {
		return nil, err
	}
	log.Debug("workspace stage", "stage", StageCollisionChecked, "exercises", len(infos))

	if o.dryRun {
		if _, err := os.Lstat(layout.Root); err == nil {
			return nil, ErrWorkspaceExists
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking the directory `%s`: %w", DirName, err)
		}
		return layout, nil
	}

	if err := os.Mkdir(layout.Root, 0755); err != nil { //nolint:gosec // workspace dir needs to be world-readable
		if errors.Is(err, fs.ErrExist) {
			return nil, ErrWorkspaceExists
		}
		return nil, fmt.Errorf("failed to create the directory `%s`: %w", DirName, err)
	}
	log.Debug("workspace stage", "stage", StageRootCreated)

	if err := ex.InitExercisesDir(layout.Root); err != nil {
		return nil, fmt.Errorf("failed to initialize the `%s/%s` directory: %w", DirName, ExercisesDir, err)
	}
	log.Debug("workspace stage", "stage", StageExercisesExtracted)

	if err := WriteNew(layout.ManifestPath, cargo.Manifest(infos)); err != nil {
		return nil, fmt.Errorf("failed to create the file `%s/%s`: %w", DirName, cargo.FileName, err)
	}
	log.Debug("workspace stage", "stage", StageManifestWritten)

	if err := writeAuxFiles(layout); err != nil {
		return nil, err
	}
	log.Debug("workspace stage", "stage", StageAuxFilesWritten)

	return layout, nil
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
