package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aloe-os/symtool/internal/logging"
	"github.com/aloe-os/symtool/pkg/extract"
	"github.com/aloe-os/symtool/pkg/runner"
)

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [flags] <path>",
		Short: "Find and print candidate function symbols",
		Long: `Find and print all candidate function symbols in the passed directory
or file, one per line.

Detection is a best-effort heuristic: any identifier immediately followed
by '(' is reported unless it is a C keyword or a function-pointer style
declaration. Ordinary calls and macro invocations are included.`,
		Args: cobra.ArbitraryArgs,
		// Unknown flags are recoverable diagnostics, and pflag cannot deliver
		// that: its unknown-flag whitelist eats the following bare argument
		// as the flag's value. Arguments are taken over raw instead.
		DisableFlagParsing: true,
		RunE:               runExtract,
	}

	// Shown in help output; parsing happens in runExtract. -h restricts to
	// headers, so the help flag carries no shorthand.
	cmd.Flags().BoolP("headers", "h", false, "restrict scanning to header files")
	cmd.Flags().Bool("help", false, "help for extract")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := logging.Default()

	for _, arg := range args {
		if arg == "--help" {
			return cmd.Help()
		}
	}

	if len(args) == 0 {
		_ = cmd.Usage()
		return fmt.Errorf("%w: missing <path>", ErrUsage)
	}

	// The search path is the last argument. Known flags are picked out of
	// the rest by hand; anything unrecognized is reported and ignored.
	path := args[len(args)-1]
	var headerOnly bool
	var configPath string
	rest := args[:len(args)-1]
	for i := 0; i < len(rest); i++ {
		switch arg := rest[i]; {
		case arg == "-h" || arg == "--headers":
			headerOnly = true
		case arg == "--debug":
			logging.SetLevel("debug")
		case arg == "--config" && i+1 < len(rest):
			i++
			configPath = rest[i]
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		case arg == "--color" && i+1 < len(rest):
			i++
		case strings.HasPrefix(arg, "--color="):
		default:
			logging.Diag("Unknown argument '%s'", arg)
		}
	}

	cfg, err := discoverConfig(configPath)
	if err != nil {
		return err
	}

	ex := extract.New(cfg.ExtraKeywords...)

	opts := runner.Options{
		Path:         path,
		Extensions:   cfg.Extensions(headerOnly),
		ExcludeGlobs: cfg.Exclude,
		Diag:         logging.Diag,
	}

	logger.Debug("starting extraction",
		logging.FieldPath, path,
		logging.FieldExtensions, opts.Extensions,
	)

	out := bufio.NewWriter(cmd.OutOrStdout())
	result, err := runner.Run(cmd.Context(), opts, ex, func(name string) error {
		if _, werr := out.WriteString(name); werr != nil {
			return werr
		}
		return out.WriteByte('\n')
	})
	if err != nil {
		// A downstream consumer that stops reading is normal termination.
		if isClosedPipe(err) {
			return nil
		}
		return err
	}

	if err := out.Flush(); err != nil {
		if isClosedPipe(err) {
			return nil
		}
		return fmt.Errorf("write output: %w", err)
	}

	logger.Debug("extraction complete",
		logging.FieldFilesScanned, result.FilesScanned,
		logging.FieldSymbols, result.SymbolsFound,
	)

	return nil
}

func isClosedPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, os.ErrClosed) ||
		strings.Contains(err.Error(), "broken pipe")
}
