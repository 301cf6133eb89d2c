package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/journal"
)

func newCheckCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Validate a year's journal against its invariants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if year == 0 {
				year = time.Now().Year()
			}
			return runCheck(cmd, dir, year)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "journal year (default: current year)")

	return cmd
}

func runCheck(cmd *cobra.Command, dir string, year int) error {
	chartSvc, err := chart.Load(dir)
	if err != nil {
		return err
	}

	svc := journal.NewService(dir, chartSvc)
	lines, err := svc.ReadYear(year)
	if err != nil {
		return err
	}

	verrs := journal.ValidateLines(lines, chartSvc, year)
	if len(verrs) > 0 {
		for _, ve := range verrs {
			fmt.Fprintln(cmd.ErrOrStderr(), ve.Error())
		}
		return fmt.Errorf("%d invariant violation(s) in %04d journal", len(verrs), year)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%04d journal OK: %d lines\n", year, len(lines))
	return nil
}
