package ui

import (
	"context"
	"fmt"
	"io"
)

// ForcedApprover approves every overwrite, used when --force is given.
type ForcedApprover struct {
	output io.Writer
}

// NewForcedApprover creates a ForcedApprover that reports to output.
func NewForcedApprover(output io.Writer) *ForcedApprover {
	return &ForcedApprover{output: output}
}

// RequestApproval approves unless ctx is already done.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(a.output, "Overwriting existing file %s\n", target)
	return true, nil
}

var _ Approver = (*ForcedApprover)(nil)
