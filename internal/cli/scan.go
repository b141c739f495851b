package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bmecat/internal/checksum"
	"github.com/vvka-141/bmecat/internal/files/scanner"
	"github.com/vvka-141/bmecat/internal/tui"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

var scanFlags struct {
	json bool
}

var scanCmd = &cobra.Command{
	Use:   "scan <directory>",
	Short: "Find catalogs in a directory tree",
	Long: `Walk a directory, sniff every .xml file for a BMECAT root element and list
the catalogs found with their dialect, size and raw SHA-256 checksum.
XML files that are not catalogs are reported as skipped.`,
	Args:              RequireDirectory,
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanFlags.json, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(scanCmd)
}

type scanEntry struct {
	scanner.CatalogFile
	Dialect string `json:"dialect"`
}

type scanOutput struct {
	Directory string      `json:"directory"`
	Catalogs  []scanEntry `json:"catalogs"`
	Skipped   []string    `json:"skipped"`
}

func runScan(cmd *cobra.Command, args []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	dir := args[0]
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("directory %s: %w", dir, bmecat.ErrFileNotFound)
	case err != nil:
		return fmt.Errorf("directory %s: %v: %w", dir, err, bmecat.ErrInvalidStream)
	case !info.IsDir():
		return fmt.Errorf("%s is not a directory: %w", dir, bmecat.ErrInvalidStream)
	}

	cc.verbosef("Scanning %s", dir)
	result, err := scanner.NewScanner(checksum.New(), cc.opts.Workers).ScanDirectory(contextOf(cmd), os.DirFS(dir))
	if err != nil {
		return fmt.Errorf("scan %s: %v: %w", dir, err, bmecat.ErrInvalidStream)
	}

	output := scanOutput{Directory: dir, Catalogs: []scanEntry{}, Skipped: result.Skipped}
	if output.Skipped == nil {
		output.Skipped = []string{}
	}
	for _, c := range result.Catalogs {
		output.Catalogs = append(output.Catalogs, scanEntry{CatalogFile: c, Dialect: c.Dialect.String()})
	}

	out := cmd.OutOrStdout()
	if scanFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}
	printScan(out, output, tui.IsStyled(out))
	return nil
}

func printScan(out io.Writer, s scanOutput, styled bool) {
	header := fmt.Sprintf("%s: %d catalog(s), %d skipped", filepath.Clean(s.Directory), len(s.Catalogs), len(s.Skipped))

	if !styled {
		fmt.Fprintln(out, header)
		for _, c := range s.Catalogs {
			fmt.Fprintf(out, "  %-6s %10d  %s  %s\n", c.Dialect, c.SizeBytes, c.Checksum[:12], c.Path)
		}
		for _, p := range s.Skipped {
			fmt.Fprintf(out, "  %-6s %10s  %12s  %s\n", "-", "", "", p)
		}
		return
	}

	lines := []string{tui.TitleStyle.Render(header)}
	for _, c := range s.Catalogs {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			tui.SuccessStyle.Render(tui.SymbolCheck),
			tui.LabelStyle.Render(tui.Dialect(c.Dialect)),
			tui.ValueStyle.Render(c.Path),
			tui.MutedStyle.Render(fmt.Sprintf("%d bytes, %s", c.SizeBytes, c.Checksum[:12]))))
	}
	for _, p := range s.Skipped {
		lines = append(lines, tui.MutedStyle.Render(tui.SymbolBullet+" "+p+" (not a catalog)"))
	}
	fmt.Fprintln(out, tui.BoxStyle.Render(strings.Join(lines, "\n")))
}
