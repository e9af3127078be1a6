// Package scaffold creates uv-managed Python projects and canonicalizes
// their layout. It delegates skeleton creation to `uv init`, then discards
// the generated manifest in favor of the canonical template, writes the
// version and typed markers, and seeds a git repository with one commit.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peridot-cli/pydt/internal/core/errs"
	"github.com/peridot-cli/pydt/internal/core/execx"
	"github.com/peridot-cli/pydt/internal/core/gitutil"
	"github.com/peridot-cli/pydt/internal/core/project"
	"github.com/peridot-cli/pydt/internal/core/pyproject"
	"github.com/peridot-cli/pydt/internal/core/toolchain"
)

// Result reports the outcome of one scaffold run.
type Result struct {
	// CreatedPath is the project directory. Set as soon as the directory
	// is known, even when a later best-effort step fails.
	CreatedPath string
}

// Scaffolder runs the scaffold sequence. Each run is independent and safe
// to retry: every generated file is written by unconditional overwrite.
type Scaffolder struct {
	Runner execx.Runner
	// Progress receives one line per notable step; nil disables reporting.
	Progress func(line string)
}

// New creates a Scaffolder over the given command runner.
func New(r execx.Runner) *Scaffolder {
	return &Scaffolder{Runner: r}
}

func (s *Scaffolder) report(format string, args ...any) {
	if s.Progress != nil {
		s.Progress(fmt.Sprintf(format, args...))
	}
}

// Run scaffolds the project described by spec.
//
// Failures before `uv init` (invalid spec, uv missing, destination
// conflict) leave the filesystem untouched. Later steps are best-effort:
// an I/O failure is reported without rollback, and the partial project can
// be completed by rerunning with force.
func (s *Scaffolder) Run(ctx context.Context, spec project.Spec, force bool) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}
	if err := toolchain.Require(s.Runner, toolchain.UvBin); err != nil {
		return Result{}, err
	}

	dir := spec.Dir()
	nonEmpty, err := isNonEmptyDir(dir)
	if err != nil {
		return Result{}, errs.Wrap(errs.IOFailure, err, "checking target directory %s", dir)
	}
	if nonEmpty && !force {
		return Result{}, errs.New(errs.DestinationConflict,
			"target directory %s already exists and is not empty (use --force to override)", dir)
	}

	if _, err := os.Stat(filepath.Join(dir, pyproject.FileName)); err == nil {
		s.report("%s already exists; skipping uv init", pyproject.FileName)
	} else if err := s.uvInit(ctx, spec); err != nil {
		return Result{}, err
	}

	res := Result{CreatedPath: dir}
	if err := s.writeCanonicalFiles(spec); err != nil {
		return res, err
	}

	if gitutil.IsRepo(dir) {
		s.report("git already initialized; skipping git init")
	} else {
		if err := gitutil.InitWithCommit(ctx, s.Runner, dir); err != nil {
			return res, err
		}
		s.report("initialized git repository and created initial commit")
	}

	return res, nil
}

// uvInit runs the external initializer in the base directory. The kind
// selects the uv flag: app has none, package is --package, library is --lib.
func (s *Scaffolder) uvInit(ctx context.Context, spec project.Spec) error {
	args := []string{"init"}
	switch spec.Kind {
	case project.KindPackage:
		args = append(args, "--package")
	case project.KindLibrary:
		args = append(args, "--lib")
	}
	args = append(args, spec.Name)

	s.report("running uv %s", strings.Join(args, " "))
	res, err := s.Runner.Run(ctx, spec.BasePath, toolchain.UvBin, args...)
	if err != nil {
		return errs.Wrap(errs.IOFailure, err, "running uv init")
	}
	if res.ExitCode != 0 {
		return errs.New(errs.IOFailure, "uv init exited with status %d: %s",
			res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return nil
}

// writeCanonicalFiles overwrites whatever uv produced with the canonical
// manifest and writes the remaining standard files. Overwriting is
// unconditional so repeated runs converge on identical content.
func (s *Scaffolder) writeCanonicalFiles(spec project.Spec) error {
	dir := spec.Dir()
	srcDir := filepath.Join(dir, "src", spec.ModuleName())
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return errs.Wrap(errs.IOFailure, err, "creating %s", srcDir)
	}

	manifest, err := pyproject.Canonical(spec.Name, spec.ModuleName()).Render()
	if err != nil {
		return errs.Wrap(errs.IOFailure, err, "rendering %s", pyproject.FileName)
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, pyproject.FileName), manifest},
		{filepath.Join(dir, pyproject.VersionFileName), pyproject.PythonVersion},
		{filepath.Join(dir, "README.md"), pyproject.README(spec.Name)},
		{filepath.Join(srcDir, "__init__.py"), pyproject.InitPy(spec.Name)},
	}
	if spec.Kind == project.KindLibrary {
		files = append(files, struct {
			path    string
			content string
		}{filepath.Join(srcDir, pyproject.TypedMarkerName), ""})
	}

	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
			return errs.Wrap(errs.IOFailure, err, "writing %s", f.path)
		}
		s.report("wrote %s", f.path)
	}
	return nil
}

// isNonEmptyDir reports whether dir exists and contains at least one entry.
// A missing directory is not an error.
func isNonEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return len(entries) > 0, nil
}
