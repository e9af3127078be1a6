// Package execx runs external commands behind an interface so that tool
// invocations can be faked in tests.
package execx

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes external commands. Implementations must be safe to
// replace with stubs in tests.
type Runner interface {
	// LookPath returns the full path of name, or an error when the binary
	// is not on PATH.
	LookPath(name string) (string, error)

	// Run executes name with args in dir (the current directory when dir
	// is empty). A non-zero exit status is reported through
	// Result.ExitCode, not through the error; the error is reserved for
	// failures to execute at all (binary missing, context canceled).
	Run(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// System is the production Runner backed by os/exec.
type System struct{}

// NewSystem creates the production Runner.
func NewSystem() *System {
	return &System{}
}

func (*System) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (*System) Run(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}
