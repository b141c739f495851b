// Package ui asks for confirmation before a command replaces an existing
// output file.
package ui

import "context"

// Approver decides whether an existing file may be overwritten.
//
// Implementations:
//   - ForcedApprover: announces the overwrite and approves (--force)
//   - InteractiveApprover: asks on the terminal and waits for y/yes
type Approver interface {
	RequestApproval(ctx context.Context, target string) (bool, error)
}
