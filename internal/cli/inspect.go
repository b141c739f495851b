package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bmecat/internal/checksum"
	"github.com/vvka-141/bmecat/internal/tui"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

var inspectFlags struct {
	json    bool
	dialect string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <catalog_path>",
	Short: "Summarize a catalog",
	Long: `Load a BMECat 1.2 or 2005 catalog and print a summary: detected dialect,
header identity, element counts and a content fingerprint that ignores
formatting and GENERATOR_INFO.`,
	Args:              RequireCatalogPath,
	ValidArgsFunction: completeCatalogFiles,
	RunE:              runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectFlags.json, "json", false, "Print the summary as JSON")
	inspectCmd.Flags().StringVar(&inspectFlags.dialect, "dialect", "", "Force the input dialect (1.2 or 2005) instead of detecting it")
	_ = inspectCmd.RegisterFlagCompletionFunc("dialect", completeFrom(dialects))
	rootCmd.AddCommand(inspectCmd)
}

// Summary is the inspect output.
type Summary struct {
	File           string   `json:"file"`
	Dialect        string   `json:"dialect"`
	CatalogID      string   `json:"catalog_id"`
	CatalogVersion string   `json:"catalog_version"`
	CatalogName    string   `json:"catalog_name,omitempty"`
	GeneratorInfo  string   `json:"generator_info,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	Supplier       string   `json:"supplier,omitempty"`
	Buyer          string   `json:"buyer,omitempty"`
	Products       int      `json:"products"`
	Prices         int      `json:"prices"`
	EDXFProducts   int      `json:"edxf_products"`
	CatalogGroups  int      `json:"catalog_groups"`
	RootGroups     int      `json:"root_groups"`
	GroupMappings  int      `json:"group_mappings"`
	Fingerprint    string   `json:"fingerprint"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	if inspectFlags.dialect != "" {
		cc.opts.Version = inspectFlags.dialect
	}

	path := args[0]
	c, err := cc.service.LoadFile(contextOf(cmd), path, cc.opts)
	if err != nil {
		return err
	}

	summary, err := summarize(path, c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inspectFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	printSummary(out, summary, tui.IsStyled(out))
	return nil
}

func summarize(path string, c *bmecat.Catalog) (*Summary, error) {
	fingerprint, err := checksum.New().CalculateCatalog(c)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		File:           path,
		Dialect:        c.SourceVersion.String(),
		CatalogID:      c.CatalogID,
		CatalogVersion: c.CatalogVersion,
		CatalogName:    c.CatalogName,
		GeneratorInfo:  c.GeneratorInfo,
		Currency:       c.Currency.String(),
		Products:       len(c.Products),
		CatalogGroups:  len(c.Structures),
		RootGroups:     len(bmecat.NewStructureIndex(c.Structures).Roots()),
		Fingerprint:    fingerprint,
	}
	for _, l := range c.Languages {
		if l != bmecat.LanguageUnknown {
			s.Languages = append(s.Languages, l.String())
		}
	}
	if c.Supplier != nil {
		s.Supplier = c.Supplier.Name
	}
	if c.Buyer != nil {
		s.Buyer = c.Buyer.Name
	}
	for _, p := range c.Products {
		s.Prices += len(p.Prices)
		s.GroupMappings += len(p.GroupMappings)
		if p.EDXF != nil {
			s.EDXFProducts++
		}
	}
	return s, nil
}

func printSummary(out io.Writer, s *Summary, styled bool) {
	rows := [][2]string{
		{"Dialect", "BMECat " + s.Dialect},
		{"Catalog", s.CatalogID + " v" + s.CatalogVersion},
	}
	if s.CatalogName != "" {
		rows = append(rows, [2]string{"Name", s.CatalogName})
	}
	if s.GeneratorInfo != "" {
		rows = append(rows, [2]string{"Generator", s.GeneratorInfo})
	}
	if len(s.Languages) > 0 {
		rows = append(rows, [2]string{"Languages", strings.Join(s.Languages, ", ")})
	}
	if s.Currency != "" {
		rows = append(rows, [2]string{"Currency", s.Currency})
	}
	if s.Supplier != "" {
		rows = append(rows, [2]string{"Supplier", s.Supplier})
	}
	if s.Buyer != "" {
		rows = append(rows, [2]string{"Buyer", s.Buyer})
	}
	rows = append(rows,
		[2]string{"Products", strconv.Itoa(s.Products)},
		[2]string{"Prices", strconv.Itoa(s.Prices)},
		[2]string{"EDXF products", strconv.Itoa(s.EDXFProducts)},
		[2]string{"Catalog groups", fmt.Sprintf("%d (%d root)", s.CatalogGroups, s.RootGroups)},
		[2]string{"Group mappings", strconv.Itoa(s.GroupMappings)},
		[2]string{"Fingerprint", s.Fingerprint},
	)

	if !styled {
		fmt.Fprintln(out, s.File)
		for _, r := range rows {
			fmt.Fprintf(out, "  %-16s%s\n", r[0], r[1])
		}
		return
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, tui.TitleStyle.Render(s.File))
	for _, r := range rows {
		if r[0] == "Dialect" {
			lines = append(lines, tui.LabelStyle.Render(r[0])+tui.Dialect(s.Dialect))
			continue
		}
		lines = append(lines, tui.Row(r[0], r[1]))
	}
	fmt.Fprintln(out, tui.BoxStyle.Render(strings.Join(lines, "\n")))
}
