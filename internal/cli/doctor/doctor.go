// Package doctor implements the "doctor" command, which checks the external
// tools scaffolding depends on.
package doctor

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/peridot-cli/pydt/internal/core/execx"
	"github.com/peridot-cli/pydt/internal/core/toolchain"
)

type check struct {
	name       string
	minVersion string // empty means presence is enough
}

// uvx ships with uv, so only its presence is probed.
var checks = []check{
	{name: toolchain.UvBin, minVersion: ">=0.9.0"},
	{name: toolchain.UvxBin},
	{name: toolchain.GitBin, minVersion: ">=2.0.0"},
}

// NewDoctorCommand returns the definition for the "doctor" command.
func NewDoctorCommand(runner execx.Runner) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check that uv, uvx and git are installed and recent enough",
		Action: func(c *cli.Context) error {
			okMark := color.New(color.FgGreen).SprintFunc()
			badMark := color.New(color.FgRed, color.Bold).SprintFunc()

			healthy := true
			for _, chk := range checks {
				ok, detail := runCheck(c.Context, runner, chk)
				if ok {
					fmt.Printf("%s %-4s %s\n", okMark("ok"), chk.name, detail)
				} else {
					healthy = false
					fmt.Printf("%s %-4s %s\n", badMark("!!"), chk.name, detail)
				}
			}
			if !healthy {
				return cli.Exit("doctor found problems with the toolchain", 1)
			}
			return nil
		},
	}
}

func runCheck(ctx context.Context, r execx.Runner, chk check) (bool, string) {
	if err := toolchain.Require(r, chk.name); err != nil {
		return false, "not found on PATH"
	}
	if chk.minVersion == "" {
		return true, "found"
	}

	v, err := toolchain.Version(ctx, r, chk.name)
	if err != nil {
		return false, fmt.Sprintf("version probe failed: %v", err)
	}
	constraint, err := semver.NewConstraint(chk.minVersion)
	if err != nil {
		return false, fmt.Sprintf("bad constraint %q: %v", chk.minVersion, err)
	}
	if !constraint.Check(v) {
		return false, fmt.Sprintf("version %s does not satisfy %s", v, chk.minVersion)
	}
	return true, v.String()
}
