package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireCatalogPath validates that exactly one catalog_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireCatalogPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <catalog_path>

Usage: %s

Example:
  %s catalog.xml --json`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireInputOutput validates that an input and an output path are provided.
func RequireInputOutput(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`missing required argument: <input> <output>

Usage: %s

Example:
  %s legacy-1.2.xml catalog-2005.xml --encoding iso-8859-1`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}

// RequireDirectory validates that exactly one directory argument is provided.
func RequireDirectory(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <directory>

Usage: %s

Example:
  %s ./catalogs --json`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
