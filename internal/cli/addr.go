package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/aloe-os/symtool/internal/logging"
	"github.com/aloe-os/symtool/pkg/fsutil"
	"github.com/aloe-os/symtool/pkg/mapfile"
)

func newAddrCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr <mapfile>",
		Short: "Look up symbol addresses in a map file",
		Long: `For each piped line of standard input, look up that symbol in the passed
map file and print the symbol with its address as eight uppercase hex
digits.

The map file format is flexible: the only requirement is that a symbol and
its address share a line.`,
		Args: mapfileArgs,
		RunE: runAddr,
	}
	return cmd
}

// mapfileArgs requires exactly the <mapfile> argument, reporting anything
// else as a usage error.
func mapfileArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		_ = cmd.Usage()
		return fmt.Errorf("%w: expected <mapfile>", ErrUsage)
	}
	return nil
}

func runAddr(cmd *cobra.Command, args []string) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	win, err := cfg.Window()
	if err != nil {
		return err
	}

	mapPath := args[0]
	content, _, err := fsutil.ReadFile(cmd.Context(), mapPath)
	if err != nil {
		return fmt.Errorf("read map file: %w", err)
	}

	lookup := mapfile.BuildLookup(string(content), win)
	logger.Debug("lookup table built",
		logging.FieldMapFile, mapPath,
		logging.FieldEntries, len(lookup),
	)

	out := cmd.OutOrStdout()

	// Lines are streamed without a length cap; map tools in the wild emit
	// very long lines.
	in := bufio.NewReader(cmd.InOrStdin())
	lineNo := 0
	for {
		line, rerr := in.ReadString('\n')
		if line != "" {
			lineNo++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !utf8.ValidString(line) {
				logging.Diag("Skipping input line %d: not valid UTF-8", lineNo)
			} else {
				sym := strings.TrimSpace(line)
				if addr, ok := lookup[sym]; ok {
					fmt.Fprintf(out, "%s %08X\n", sym, addr)
				}
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", rerr)
		}
	}
}
