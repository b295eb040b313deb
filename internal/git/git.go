package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsInstalled returns true if git is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo returns true if dir already has a .git directory.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Init runs git init in dir.
func Init(dir string) error {
	return run(dir, "init")
}

// Add stages the given paths.
func Add(dir string, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	return run(dir, args...)
}

// Commit creates a commit with the given message. A repo-local identity is
// configured when the user has none, so the first commit never fails on it.
func Commit(dir, message string) error {
	if err := ensureCommitIdentity(dir); err != nil {
		return fmt.Errorf("setting commit identity: %w", err)
	}
	return run(dir, "commit", "--quiet", "-m", message)
}

// HeadCommit returns the short SHA of HEAD.
func HeadCommit(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func ensureCommitIdentity(dir string) error {
	if _, err := output(dir, "config", "user.name"); err != nil {
		if err := run(dir, "config", "user.name", "rustlings"); err != nil {
			return err
		}
	}
	if _, err := output(dir, "config", "user.email"); err != nil {
		if err := run(dir, "config", "user.email", "rustlings@localhost"); err != nil {
			return err
		}
	}
	return nil
}

// run executes a git command without printing stdout.
// Stderr is captured and included in the error message on failure.
func run(dir string, args ...string) error {
	_, err := output(dir, args...)
	return err
}

func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
