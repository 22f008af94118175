package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Installer installs a project's dependencies.
type Installer interface {
	Install(ctx context.Context) error
}

// Func adapts an ordinary function to the Installer interface.
type Func func(ctx context.Context) error

// Install calls f(ctx).
func (f Func) Install(ctx context.Context) error { return f(ctx) }

// ErrInstallerNotFound means the installer executable is not on PATH.
var ErrInstallerNotFound = errors.New("installer executable not found")

// InstallError reports an installer that ran but exited nonzero.
type InstallError struct {
	Argv     []string
	ExitCode int
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", strings.Join(e.Argv, " "), e.ExitCode)
}

// Command runs Argv as the dependency installer.
type Command struct {
	Argv []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env replaces the environment when non-nil.
	Env []string

	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs the command and waits for it to exit. It returns nil on exit
// status 0 and *InstallError on any other status.
func (c *Command) Install(ctx context.Context) error {
	if len(c.Argv) == 0 {
		return errors.New("installer command is empty")
	}

	bin, err := exec.LookPath(c.Argv[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInstallerNotFound, c.Argv[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Argv[1:]...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdin = c.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = c.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = c.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &InstallError{
				Argv:     append([]string(nil), c.Argv...),
				ExitCode: exitErr.ExitCode(),
			}
		}
		return fmt.Errorf("running %s: %w", c.Argv[0], err)
	}
	return nil
}

// String returns the command line as it would be typed.
func (c *Command) String() string {
	return strings.Join(c.Argv, " ")
}

// ParseCommand splits an installer command line into an argument vector,
// honoring shell-style quoting. It does not expand variables or globs.
func ParseCommand(s string) ([]string, error) {
	argv, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parsing installer command %q: %w", s, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("installer command is empty")
	}
	return argv, nil
}
