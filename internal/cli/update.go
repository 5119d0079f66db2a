package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aloe-os/symtool/internal/logging"
	"github.com/aloe-os/symtool/pkg/fsutil"
	"github.com/aloe-os/symtool/pkg/mapfile"
)

func newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <mapfile>",
		Short: "Apply symbol renames to a map file in place",
		Long: `For each piped line of standard input, find the symbol and address on
that line, then rewrite the passed map file so the entry at that address
carries the new symbol name. Every byte not part of a renamed symbol is
preserved.

The input and map file formats are flexible: the only requirement is that
a symbol and its address share a line.`,
		Args: mapfileArgs,
		RunE: runUpdate,
	}
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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
	content, mode, err := fsutil.ReadFile(cmd.Context(), mapPath)
	if err != nil {
		return fmt.Errorf("read map file: %w", err)
	}

	renames, err := mapfile.ReadRenames(cmd.InOrStdin(), win, func(lineNo int, rerr error) {
		logging.Diag("Skipping input line %d: %v", lineNo, rerr)
	})
	if err != nil {
		return err
	}

	if len(renames) == 0 {
		logger.Debug("no renames parsed from input, map file untouched",
			logging.FieldMapFile, mapPath,
		)
		return nil
	}

	updated, replacements, err := mapfile.Update(string(content), renames, win)
	if err != nil {
		return fmt.Errorf("update map file: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range replacements {
		fmt.Fprintf(out, "%s -> %s\n", r.Old, r.New)
	}

	written, err := fsutil.WriteAtomicIfChanged(cmd.Context(), mapPath, updated, mode)
	if err != nil {
		return fmt.Errorf("write map file: %w", err)
	}

	logger.Debug("map file updated",
		logging.FieldMapFile, mapPath,
		logging.FieldReplacements, len(replacements),
		"written", written,
	)

	return nil
}
