// Package check runs the user-configured test command.
package check

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"
)

// ErrNoCommand is returned when the configured test command has no tokens.
var ErrNoCommand = errors.New("no test command set")

// Result contains the outcome of one test command run.
type Result struct {
	// Command is the command text as configured.
	Command string

	// Passed indicates whether the command exited successfully.
	Passed bool

	// Duration is how long the run took.
	Duration time.Duration

	// Err holds the underlying error when the command could not be run
	// or exited nonzero.
	Err error
}

// Run executes the test command synchronously with output wired to stdout
// and stderr. The command text is split on whitespace into a program name
// and arguments; there is no shell interpretation. An empty or
// whitespace-only command is a failure without anything being executed.
func Run(ctx context.Context, command string, stdout, stderr io.Writer) Result {
	result := Result{Command: command}

	parts := strings.Fields(command)
	if len(parts) == 0 {
		result.Err = ErrNoCommand
		return result
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	result.Passed = true
	return result
}
