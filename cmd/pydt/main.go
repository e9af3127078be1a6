package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/peridot-cli/pydt/internal/cli/doctor"
	"github.com/peridot-cli/pydt/internal/cli/newcmd"
	"github.com/peridot-cli/pydt/internal/cli/self"
	"github.com/peridot-cli/pydt/internal/core/execx"
)

func main() {
	runner := execx.NewSystem()

	app := &cli.App{
		Name:    "pydt",
		Usage:   "A Python project scaffolder built on uv",
		Version: "v0.1.0",
		Action: func(c *cli.Context) error {
			// Default action if no command is specified
			_ = cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			newcmd.NewCommand(runner),
			doctor.NewDoctorCommand(runner),
			self.NewSelfCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
