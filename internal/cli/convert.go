package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvka-141/bmecat/internal/checksum"
	"github.com/vvka-141/bmecat/internal/tui"
	"github.com/vvka-141/bmecat/internal/ui"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

var convertFlags struct {
	encoding      string
	indent        int
	dialect       string
	generatorInfo string
	force         bool
}

// stdinIsTerminal decides whether an overwrite can be confirmed interactively.
var stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a catalog to BMECat 2005",
	Long: `Load a BMECat 1.2 or 2005 catalog and write it as BMECat 2005.

Flags override the output settings from bmecat.yaml. An existing output
file is only replaced after confirmation on the terminal, or with --force.`,
	Args:              RequireInputOutput,
	ValidArgsFunction: completeCatalogFiles,
	RunE:              runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFlags.encoding, "encoding", "e", "", "Output encoding: utf-8 or iso-8859-1")
	convertCmd.Flags().IntVar(&convertFlags.indent, "indent", 0, "Spaces per nesting level; negative writes a single line")
	convertCmd.Flags().StringVar(&convertFlags.dialect, "dialect", "", "Force the input dialect (1.2 or 2005) instead of detecting it")
	convertCmd.Flags().StringVar(&convertFlags.generatorInfo, "generator-info", "", "GENERATOR_INFO to write when the input has none")
	convertCmd.Flags().BoolVarP(&convertFlags.force, "force", "f", false, "Overwrite an existing output file without asking")
	_ = convertCmd.RegisterFlagCompletionFunc("encoding", completeFrom(encodings))
	_ = convertCmd.RegisterFlagCompletionFunc("dialect", completeFrom(dialects))
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("encoding") {
		cc.opts.Encoding = convertFlags.encoding
	}
	if flags.Changed("indent") {
		cc.opts.Indent = convertFlags.indent
	}
	if flags.Changed("dialect") {
		cc.opts.Version = convertFlags.dialect
	}
	if flags.Changed("generator-info") {
		cc.opts.GeneratorInfo = convertFlags.generatorInfo
	}

	in, out := args[0], args[1]
	c, err := cc.service.LoadFile(contextOf(cmd), in, cc.opts)
	if err != nil {
		return err
	}
	cc.verbosef("Loaded %s: BMECat %s, %d products", in, c.SourceVersion, len(c.Products))

	if err := confirmOverwrite(cmd, cc, out); err != nil {
		return err
	}

	if err := cc.service.SaveFile(out, c, cc.opts); err != nil {
		return err
	}

	if data, err := cc.fsys.ReadFile(out); err == nil {
		cc.verbosef("Wrote %s: %d bytes, sha256 %s", out, len(data), checksum.New().CalculateRaw(data))
	}

	w := cmd.OutOrStdout()
	msg := fmt.Sprintf("%s %s (BMECat %s) %s %s (BMECat 2005), %d products",
		tui.SymbolCheck, in, c.SourceVersion, tui.SymbolArrowRight, out, len(c.Products))
	if tui.IsStyled(w) {
		msg = tui.SuccessStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
	return nil
}

// confirmOverwrite returns nil when out does not exist or replacing it was
// approved.
func confirmOverwrite(cmd *cobra.Command, cc *commandContext, out string) error {
	info, err := cc.fsys.Stat(out)
	if err != nil {
		// Missing is the normal case; other errors surface from SaveFile.
		return nil
	}
	if info.IsDir() {
		return fmt.Errorf("output %s is a directory: %w", out, bmecat.ErrInvalidStream)
	}

	var approver ui.Approver
	switch {
	case convertFlags.force:
		approver = ui.NewForcedApprover(cmd.ErrOrStderr())
	case stdinIsTerminal():
		approver = ui.NewInteractiveApprover(cmd.InOrStdin(), cmd.ErrOrStderr())
	default:
		return fmt.Errorf("output %s already exists, use --force to overwrite: %w", out, bmecat.ErrInvalidStream)
	}

	approved, err := approver.RequestApproval(contextOf(cmd), out)
	if err != nil {
		return err
	}
	if !approved {
		return fmt.Errorf("overwrite of %s declined: %w", out, bmecat.ErrInvalidStream)
	}
	cc.verbosef("Overwriting %s", out)
	return nil
}
