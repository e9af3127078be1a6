// Package newcmd implements the "new" command, which scaffolds a uv-managed
// Python project and applies the canonical template.
package newcmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/peridot-cli/pydt/internal/core/errs"
	"github.com/peridot-cli/pydt/internal/core/execx"
	"github.com/peridot-cli/pydt/internal/core/project"
	"github.com/peridot-cli/pydt/internal/core/scaffold"
)

// NewCommand returns the definition for the "new" command.
func NewCommand(runner execx.Runner) *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Scaffold a new Python project with uv and apply the canonical template",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Project type: app, package or library",
				Value:   "package",
			},
			&cli.StringFlag{
				Name:     "name",
				Aliases:  []string{"n"},
				Usage:    "Project name (hyphenated), e.g. example-pkg",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Base directory to create the project under",
				Value:   ".",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Proceed even if the target directory exists and is not empty",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Action: func(c *cli.Context) error {
			kind, err := project.ParseKind(c.String("type"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			spec := project.Spec{
				Kind:     kind,
				Name:     c.String("name"),
				BasePath: c.String("path"),
			}

			if info, statErr := os.Stat(spec.BasePath); statErr != nil || !info.IsDir() {
				specErr := errs.New(errs.InvalidSpec, "base path %q is not an existing directory", spec.BasePath)
				return cli.Exit(specErr.Error(), 1)
			}

			sc := scaffold.New(runner)
			if c.Bool("verbose") {
				sc.Progress = func(line string) { fmt.Println(line) }
			}

			fmt.Printf("Initializing project with uv: type=%s, name=%s\n", kind, spec.Name)
			res, err := sc.Run(c.Context, spec, c.Bool("force"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			printEpilogue(res.CreatedPath)
			return nil
		},
	}
}

// printEpilogue shows where the project landed and the commands the user
// should run next (formatting, linting and tests stay delegated to uvx).
func printEpilogue(createdPath string) {
	created := color.New(color.FgGreen, color.Bold).SprintFunc()
	step := color.New(color.FgCyan).SprintFunc()

	fmt.Printf("%s %s\n", created("Created"), createdPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", createdPath)
	fmt.Println(step("  uvx ruff format ."))
	fmt.Println(step("  uvx ruff check --fix ."))
	fmt.Println(step("  uvx pytest -q"))
}
