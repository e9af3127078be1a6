package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/peridot-cli/pydt/internal/core/execx"
)

// fakeRunner serves configurable availability and --version output per tool.
type fakeRunner struct {
	missing map[string]bool
	stdout  map[string]string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(_ context.Context, _ string, name string, _ ...string) (execx.Result, error) {
	return execx.Result{Stdout: f.stdout[name]}, nil
}

func healthyRunner() *fakeRunner {
	return &fakeRunner{
		missing: map[string]bool{},
		stdout: map[string]string{
			"uv":  "uv 0.9.30 (a1b2c3d 2025-06-01)\n",
			"git": "git version 2.43.0\n",
		},
	}
}

// runDoctor runs `pydt doctor` and captures stdout.
func runDoctor(t *testing.T, runner execx.Runner) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = originalStdout }()

	app := &cli.App{
		Commands:       []*cli.Command{NewDoctorCommand(runner)},
		ExitErrHandler: func(*cli.Context, error) {},
	}
	cmdErr := app.Run([]string{"pydt", "doctor"})

	require.NoError(t, w.Close())
	var out bytes.Buffer
	_, err = out.ReadFrom(r)
	require.NoError(t, err)

	return out.String(), cmdErr
}

func TestDoctorHealthy(t *testing.T) {
	out, err := runDoctor(t, healthyRunner())
	require.NoError(t, err)

	assert.Contains(t, out, "ok uv")
	assert.Contains(t, out, "0.9.30")
	assert.Contains(t, out, "ok uvx")
	assert.Contains(t, out, "ok git")
	assert.Contains(t, out, "2.43.0")
}

func TestDoctorUvMissing(t *testing.T) {
	runner := healthyRunner()
	runner.missing["uv"] = true

	out, err := runDoctor(t, runner)
	require.Error(t, err)
	assert.Contains(t, out, "!! uv")
	assert.Contains(t, out, "not found on PATH")
}

func TestDoctorOldUvVersion(t *testing.T) {
	runner := healthyRunner()
	runner.stdout["uv"] = "uv 0.4.12\n"

	out, err := runDoctor(t, runner)
	require.Error(t, err)
	assert.Contains(t, out, "does not satisfy >=0.9.0")
}

func TestDoctorUvxPresenceOnly(t *testing.T) {
	runner := healthyRunner()
	runner.missing["uvx"] = true

	out, err := runDoctor(t, runner)
	require.Error(t, err)
	assert.Contains(t, out, "!! uvx")
	// uv and git are still healthy and reported
	assert.Contains(t, out, "ok uv")
	assert.Contains(t, out, "ok git")
}
