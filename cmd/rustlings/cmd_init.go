package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fbkclanna/rustlings/internal/cargo"
	"github.com/fbkclanna/rustlings/internal/embedded"
	"github.com/fbkclanna/rustlings/internal/exercise"
	"github.com/fbkclanna/rustlings/internal/git"
	"github.com/fbkclanna/rustlings/internal/ui"
	"github.com/fbkclanna/rustlings/internal/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const initPrompt = "This command will create the directory `rustlings/` which will contain the exercises.\n" +
	"Continue?"

const initDone = `Initialization done ✓

Run ` + "`cd rustlings`" + ` to go into the generated directory.
Then run ` + "`rustlings`" + ` to get started.
`

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the rustlings/ directory with the exercises",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	addInitFlags(cmd.Flags())
	cmd.MarkFlagsRequiredTogether("info", "exercises")
	return cmd
}

func addInitFlags(fs *pflag.FlagSet) {
	fs.BoolP("yes", "y", false, "Skip the confirmation prompt")
	fs.Bool("git", false, "Initialize a git repository with an initial commit")
	fs.Bool("dry-run", false, "Show what would be created without writing anything")
	fs.String("info", "", "Exercise catalog (.toml, .yaml or .json) to use instead of the built-in one")
	fs.String("exercises", "", "Directory holding the exercise sources listed in --info")
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	verbose, _ := cmd.Flags().GetBool("verbose")
	yes, _ := cmd.Flags().GetBool("yes")
	withGit, _ := cmd.Flags().GetBool("git")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	infoPath, _ := cmd.Flags().GetString("info")
	exercisesDir, _ := cmd.Flags().GetString("exercises")

	logger := newLogger(cmd)
	out := cmd.OutOrStdout()

	var progressOut io.Writer
	if verbose {
		progressOut = cmd.ErrOrStderr()
	}
	catalog, extractor, err := loadSources(infoPath, exercisesDir, progressOut)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", "exercises", catalog.Names())

	opts := []workspace.Option{workspace.WithLogger(logger)}
	if dryRun {
		layout, err := workspace.Init(root, catalog.Exercises, extractor, append(opts, workspace.WithDryRun())...)
		if err != nil {
			return err
		}
		return printPlan(out, layout, catalog.Exercises)
	}

	if !yes && term.IsTerminal(int(os.Stdin.Fd())) {
		ok, err := promptConfirm(initPrompt)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("initialization aborted")
		}
	}

	layout, err := workspace.Init(root, catalog.Exercises, extractor, opts...)
	if err != nil {
		return err
	}

	if withGit {
		initGitRepo(cmd, layout.Root)
	}

	_, _ = fmt.Fprint(out, initDone)
	return nil
}

// loadSources returns the catalog and matching extractor: the built-in
// exercises by default, or --info/--exercises when given.
func loadSources(infoPath, exercisesDir string, progress io.Writer) (*exercise.Catalog, *embedded.FSExtractor, error) {
	if infoPath == "" {
		catalog, err := embedded.Catalog()
		if err != nil {
			return nil, nil, err
		}
		return catalog, embedded.Default(progress), nil
	}

	catalog, err := exercise.Load(infoPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", infoPath, err)
	}
	info, err := os.Stat(exercisesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading --exercises: %w", err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("--exercises %s is not a directory", exercisesDir)
	}
	ex := &embedded.FSExtractor{FS: os.DirFS(exercisesDir), Dir: ".", Out: progress}
	return catalog, ex, nil
}

// printPlan lists the bin targets and files a real run would create.
func printPlan(out io.Writer, layout *workspace.Layout, infos []exercise.Info) error {
	_, _ = fmt.Fprintf(out, "Would create %s with %d exercises:\n\n", layout.Root, len(infos))
	tbl := ui.NewTable(out, "bin", "path")
	for _, info := range infos {
		tbl.Row(info.Name, cargo.BinPath(info))
	}
	if err := tbl.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out)
	for _, f := range layout.Files() {
		_, _ = fmt.Fprintf(out, "  %s/%s\n", workspace.DirName, f)
	}
	return nil
}

// initGitRepo puts the new workspace under version control.
// Errors are reported as warnings; the workspace itself is already complete.
func initGitRepo(cmd *cobra.Command, dir string) {
	errOut := cmd.ErrOrStderr()
	if !git.IsInstalled() {
		_, _ = fmt.Fprintf(errOut, "Warning: git is not installed; skipping git initialization\n")
		return
	}
	if git.IsRepo(dir) {
		_, _ = fmt.Fprintf(errOut, "Git repository already exists in %s; skipping git init\n", dir)
		return
	}
	if err := git.Init(dir); err != nil {
		_, _ = fmt.Fprintf(errOut, "Warning: git init failed: %v\n", err)
		return
	}
	if err := git.Add(dir, "."); err != nil {
		_, _ = fmt.Fprintf(errOut, "Warning: git add failed: %v\n", err)
		return
	}
	if err := git.Commit(dir, "Initialize exercises"); err != nil {
		_, _ = fmt.Fprintf(errOut, "Warning: git commit failed: %v\n", err)
		return
	}
	if sha, err := git.HeadCommit(dir); err == nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Committed the initial workspace as %s\n", sha)
	}
}
