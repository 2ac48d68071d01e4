// Package util wraps process execution for the external tools mlsblk reads from.
package util

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// CommandOutput wraps the output from an exec command as strings.
type CommandOutput struct {
	Stdout string
	Stderr string
}

// ExecuteCommand executes the command and returns Stdout and Stderr as strings. The command is killed when ctx is
// done. Additional environment variables may be given in envVars and are appended to the current environment.
func ExecuteCommand(ctx context.Context, c []string, envVars []string) (CommandOutput, error) {
	// Check the empty struct case ([]string{}) for the command
	if len(c) == 0 {
		return CommandOutput{}, fmt.Errorf("must provide a command")
	}

	// Separate name and args
	name := c[0]
	var args []string
	if len(c) > 1 {
		args = c[1:]
	}

	// Set command and create output buffers
	cmd := exec.CommandContext(ctx, name, args...)
	var stdoutb, stderrb bytes.Buffer
	cmd.Stdout = &stdoutb
	cmd.Stderr = &stderrb

	cmd.Env = append(os.Environ(), envVars...)

	if err := cmd.Start(); err != nil {
		return CommandOutput{Stdout: stdoutb.String(), Stderr: stderrb.String()}, fmt.Errorf("error starting specified command: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		return CommandOutput{Stdout: stdoutb.String(), Stderr: stderrb.String()}, fmt.Errorf("error waiting for specified command to exit: %w", err)
	}

	return CommandOutput{Stdout: stdoutb.String(), Stderr: stderrb.String()}, nil
}
