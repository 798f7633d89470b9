package opener

import (
	"context"
	"os/exec"
	"time"
)

// CommandRunner abstracts command execution for testing
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner starts real commands using os/exec
type ExecRunner struct{}

// Run executes a command with a 10-second timeout
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
	}

	return exec.CommandContext(ctx, name, args...).Run()
}
