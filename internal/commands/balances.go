package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/bookkeep-dev/bookkeep/internal/auditlog"
	"github.com/bookkeep-dev/bookkeep/internal/chart"
	"github.com/bookkeep-dev/bookkeep/internal/journal"
	"github.com/bookkeep-dev/bookkeep/internal/report"
)

func newBalancesCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "balances [directory]",
		Short: "Replay a year's journal and print the trial balance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if year == 0 {
				year = time.Now().Year()
			}
			return runBalances(cmd, dir, year)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "journal year (default: current year)")

	return cmd
}

func runBalances(cmd *cobra.Command, dir string, year int) error {
	chartSvc, err := chart.Load(dir)
	if err != nil {
		return err
	}

	svc := journal.NewService(dir, chartSvc)
	lines, err := svc.ReadYear(year)
	if err != nil {
		return err
	}

	st, err := svc.Replay(year)
	if err != nil {
		return err
	}

	if err := report.WriteTrialBalance(cmd.OutOrStdout(), st); err != nil {
		return err
	}

	balanced := true
	for _, ledger := range st.Ledgers {
		if !ledger.InBalance() {
			balanced = false
		}
	}
	entryCount := len(groupIDs(lines))

	return auditlog.Append(dir, []auditlog.Entry{{
		Timestamp: time.Now().UTC(),
		Command:   "balances",
		Year:      year,
		Entries:   entryCount,
		Ledgers:   len(st.Ledgers),
		Balanced:  balanced,
	}})
}

func groupIDs(lines []journal.Line) []string {
	seen := make(map[string]bool)
	var order []string
	for _, line := range lines {
		g := line.EntryGroup()
		if !seen[g] {
			seen[g] = true
			order = append(order, g)
		}
	}
	return order
}
