package gpu

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// NvidiaSMI is the executable name looked up on PATH
const NvidiaSMI = "nvidia-smi"

// Command runs an executable from PATH with no arguments
type Command struct {
	Name string
}

// NewNvidiaSMI returns a Diagnostic bound to nvidia-smi
func NewNvidiaSMI() *Command {
	return &Command{Name: NvidiaSMI}
}

// Run waits for the process to finish and returns its stdout.
// A non-zero exit is reported as ErrDiagnosticFailed, anything else
// (missing binary, permission denied, killed by ctx) is returned wrapped.
func (c *Command) Run(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, c.Name)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return "", fmt.Errorf("%w: %s exit status %d", ErrDiagnosticFailed, c.Name, exitErr.ExitCode())
		}
		return "", fmt.Errorf("failed to run %s: %w", c.Name, err)
	}
	return string(out), nil
}
