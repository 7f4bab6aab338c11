package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrTimeout is returned by RunWithTimeout when the command is killed for
// exceeding its deadline. Callers distinguish it from ordinary failures.
var ErrTimeout = errors.New("command timed out")

// Result captures the outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

var globalVerbose bool

// SetGlobalVerbose sets verbose mode for all runners.
func SetGlobalVerbose(v bool) {
	globalVerbose = v
}

type Runner struct {
	verbose bool
}

func NewRunner() *Runner {
	return &Runner{verbose: globalVerbose}
}

func (r *Runner) SetVerbose(v bool) {
	r.verbose = v
}

func (r *Runner) logCommand(name string, args []string) {
	if r.verbose {
		fmt.Fprintf(os.Stderr, "  $ %s %s\n", name, strings.Join(args, " "))
	}
}

// RunSilent executes a command and returns stdout. Stderr is included in errors.
func (r *Runner) RunSilent(ctx context.Context, name string, args []string) ([]byte, error) {
	r.logCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, stderr.String())
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

// RunWithTimeout executes a command under its own deadline and returns the
// captured output. A deadline hit yields ErrTimeout; a nonzero exit is not an
// error by itself and is reported through Result.ExitCode.
func (r *Runner) RunWithTimeout(ctx context.Context, timeout time.Duration, name string, args []string) (Result, error) {
	r.logCommand(name, args)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctx.Err() == context.DeadlineExceeded {
		return res, fmt.Errorf("%w after %v: %s %s", ErrTimeout, timeout, name, strings.Join(args, " "))
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}

	return res, nil
}

func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
