// Package toolchain locates and probes the external tools pydt delegates to.
package toolchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/peridot-cli/pydt/internal/core/errs"
	"github.com/peridot-cli/pydt/internal/core/execx"
)

// Binary names of the external collaborators.
const (
	UvBin  = "uv"
	UvxBin = "uvx"
	GitBin = "git"
)

// InstallHint is appended to ToolMissing errors for uv.
const InstallHint = "install uv first: https://docs.astral.sh/uv/"

// Require returns a ToolMissing error unless name is on PATH.
func Require(r execx.Runner, name string) error {
	if _, err := r.LookPath(name); err != nil {
		if name == UvBin {
			return errs.Wrap(errs.ToolMissing, err, "`uv` is not installed or not on PATH; %s", InstallHint)
		}
		return errs.Wrap(errs.ToolMissing, err, "`%s` is not installed or not on PATH", name)
	}
	return nil
}

// Version runs `<name> --version` and extracts the semantic version from
// output such as "uv 0.9.30 (a1b2c3d 2025-06-01)" or "git version 2.43.0".
func Version(ctx context.Context, r execx.Runner, name string) (*semver.Version, error) {
	res, err := r.Run(ctx, "", name, "--version")
	if err != nil {
		return nil, errs.Wrap(errs.ToolMissing, err, "running %s --version", name)
	}
	if res.ExitCode != 0 {
		return nil, errs.New(errs.ToolMissing, "%s --version exited with status %d", name, res.ExitCode)
	}
	return parseVersion(res.Stdout)
}

func parseVersion(out string) (*semver.Version, error) {
	for _, field := range strings.Fields(out) {
		if v, err := semver.NewVersion(strings.TrimPrefix(field, "v")); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no semantic version in %q", strings.TrimSpace(out))
}
