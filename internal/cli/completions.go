package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// encodings contains the output encodings offered for shell completion.
var encodings = []string{bmecat.EncodingUTF8, bmecat.EncodingISO8859_1}

// dialects contains the versions accepted by --dialect.
var dialects = []string{"1.2", "2005"}

func completeFrom(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				matches = append(matches, v)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeCatalogFiles restricts file completion to XML catalogs.
func completeCatalogFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"xml", "XML"}, cobra.ShellCompDirectiveFilterFileExt
}

func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
