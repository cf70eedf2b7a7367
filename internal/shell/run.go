package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Options controls how a generated script is executed.
type Options struct {
	Dir    string
	Env    []string // appended to os.Environ()
	Stdout io.Writer
	Stderr io.Writer
}

// Run feeds script to bash on stdin and returns its exit code.
// A non-zero exit is reported through the code, not the error.
func Run(ctx context.Context, script string, opts Options) (int, error) {
	cmd := exec.CommandContext(ctx, "bash", "-s")
	cmd.Dir = opts.Dir
	cmd.Env = append(os.Environ(), opts.Env...)
	cmd.Stdin = strings.NewReader(script)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return exitCode(cmd.Run())
}

// exitCode extracts an exit code from a command error.
// Returns (code, nil) for ExitError, (0, err) for other errors, (0, nil) for nil.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
