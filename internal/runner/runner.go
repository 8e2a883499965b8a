package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrNotExecutable is returned when the resolved script exists but has no
// execute permission bit set. `rs :x` fixes this.
var ErrNotExecutable = errors.New("script is not executable")

// Runner dispatches scripts. The zero value inherits the process's standard
// streams; tests set the writers to buffers.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the script at path with args appended, blocking until it
// exits. The child's exit code is returned unchanged; a non-zero code is
// not an error. The error return covers start failures only.
func (r *Runner) Run(ctx context.Context, path string, args []string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("resolving script %s: %w", path, err)
	}
	if info.Mode().Perm()&0111 == 0 {
		return 0, fmt.Errorf("%s: %w", path, ErrNotExecutable)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("executing %s: %w", path, err)
	}

	return 0, nil
}
