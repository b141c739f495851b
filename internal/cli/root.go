package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bmecat/internal/config"
	"github.com/vvka-141/bmecat/internal/files/filesystem"
	"github.com/vvka-141/bmecat/internal/logging"
	"github.com/vvka-141/bmecat/internal/services"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

const asciiLogo = ` _
| |__  _ __ ___   ___  ___ __ _| |_
| '_ \| '_ ` + "`" + ` _ \ / _ \/ __/ _` + "`" + ` | __|
| |_) | | | | | |  __/ (_| (_| | |_
|_.__/|_| |_| |_|\___|\___\__,_|\__|`

var rootCmd = &cobra.Command{
	Use:   "bmecat",
	Short: "Read, inspect and convert BMECat product catalogs",
	Long: asciiLogo + `

bmecat reads BMECat 1.2 and 2005 catalogs, including the ETIM EDXF
extension, and writes them back as BMECat 2005.

Settings are read from bmecat.yaml in the working directory (or --config),
then from .env and BMECAT_* environment variables.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or options
  20 - Input not readable or output not writable
  21 - Catalog file not found
  22 - Unsupported BMECat version requested
  23 - Malformed or unmappable document`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for bmecat")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (default: ./bmecat.yaml if present)")
	rootCmd.PersistentFlags().String("log-format", logFormatConsole, "Diagnostics format on stderr: console, text or json")
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeFrom(logFormats))
}

const (
	logFormatConsole = "console"
	logFormatText    = "text"
	logFormatJSON    = "json"
)

var logFormats = []string{logFormatConsole, logFormatText, logFormatJSON}

// newLogger builds the diagnostics logger. The console format keeps the
// prefixed human output; text and json emit structured slog records to w.
// Debug records are only written when verbose is set.
func newLogger(format string, verbose bool, w io.Writer) (bmecat.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch format {
	case "", logFormatConsole:
		return logging.NewConsoleLogger(verbose), nil
	case logFormatText:
		return logging.NewSlogLogger(slog.New(slog.NewTextHandler(w, handlerOpts))), nil
	case logFormatJSON:
		return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(w, handlerOpts))), nil
	}
	return nil, fmt.Errorf("invalid argument %q for \"--log-format\": want one of %s", format, strings.Join(logFormats, ", "))
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// commandContext carries what every catalog command needs.
type commandContext struct {
	logger  bmecat.Logger
	opts    bmecat.Options
	service *services.CatalogService
	fsys    filesystem.FileSystemProvider
}

// newCommandContext resolves configuration and builds the service.
func newCommandContext(cmd *cobra.Command) (*commandContext, error) {
	format, _ := cmd.Flags().GetString("log-format")
	logger, err := newLogger(format, getVerboseFlag(cmd), cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOSFileSystem()
	cc := &commandContext{
		logger:  logger,
		opts:    cfg.Options(logger),
		service: services.NewCatalogService(fsys, logger),
		fsys:    fsys,
	}
	if configPath != "" {
		cc.verbosef("Using config %s", configPath)
	}
	return cc, nil
}

// verbosef logs a debug line, shown only with --verbose.
func (cc *commandContext) verbosef(format string, args ...interface{}) {
	cc.logger.Log(bmecat.SeverityDebug, fmt.Sprintf(format, args...))
}

// contextOf returns the command's context, or Background when the command
// runs outside Execute.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
