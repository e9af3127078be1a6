// Package gitutil drives the git commands used to seed a freshly scaffolded
// repository.
package gitutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/peridot-cli/pydt/internal/core/errs"
	"github.com/peridot-cli/pydt/internal/core/execx"
)

// InitialCommitMessage is the message of the single commit created for a
// new project.
const InitialCommitMessage = "chore: initial commit"

// IsRepo reports whether dir already contains a .git entry.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// InitWithCommit initializes a repository in dir, stages everything, and
// creates the initial commit. Callers should skip it when IsRepo(dir).
func InitWithCommit(ctx context.Context, r execx.Runner, dir string) error {
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", InitialCommitMessage},
	}
	for _, args := range steps {
		res, err := r.Run(ctx, dir, "git", args...)
		if err != nil {
			return errs.Wrap(errs.IOFailure, err, "running git %s", strings.Join(args, " "))
		}
		if res.ExitCode != 0 {
			return errs.New(errs.IOFailure, "git %s exited with status %d: %s",
				strings.Join(args, " "), res.ExitCode, strings.TrimSpace(res.Stderr))
		}
	}
	return nil
}
