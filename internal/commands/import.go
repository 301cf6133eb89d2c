package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/config"
	"github.com/bookkeep-dev/bookkeep/internal/importer"
	"github.com/bookkeep-dev/bookkeep/internal/journal"
)

func newImportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import <bank-csv>",
		Short: "Import a bank CSV as draft journal entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, dir, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "book directory")

	return cmd
}

func runImport(cmd *cobra.Command, dir, csvPath string) error {
	cfg, err := config.Load(filepath.Join(dir, "bookkeep.yaml"))
	if err != nil {
		return err
	}

	parser := importer.DefaultRegistry().Get(cfg.Import.Format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q", cfg.Import.Format)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening bank CSV: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing bank CSV: %w", err)
	}
	if len(txns) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions to import")
		return nil
	}

	chartSvc, err := chart.Load(dir)
	if err != nil {
		return err
	}
	svc := journal.NewService(dir, chartSvc)

	// All rows in one bank export belong to one year in practice; take the
	// year from the first transaction.
	year := txns[0].Date.Year()
	seq, err := svc.NextEntrySeq(year)
	if err != nil {
		return err
	}

	mapping := importer.Mapping{
		BankTerm:    cfg.Import.BankTerm,
		ExpenseTerm: cfg.Import.ExpenseTerm,
		IncomeTerm:  cfg.Import.IncomeTerm,
	}
	lines := importer.DraftLines(txns, mapping, seq)

	if err := svc.Append(year, lines); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transaction(s) as %d journal line(s)\n", len(txns), len(lines))
	return nil
}
