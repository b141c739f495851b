package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// InteractiveApprover prompts on output and reads the answer from input.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(input io.Reader, output io.Writer) *InteractiveApprover {
	return &InteractiveApprover{input: input, output: output}
}

// RequestApproval asks whether target may be replaced. Only "y" or "yes"
// (any case) approves.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintf(a.output, "%s already exists. Overwrite? [y/N]: ", target)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || input == "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		}
		fmt.Fprintf(a.output, "Keeping %s.\n", target)
		return false, nil
	}
}

var _ Approver = (*InteractiveApprover)(nil)
