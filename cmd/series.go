package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Xerialen/wikiadminsupport/internal/report"
	"github.com/Xerialen/wikiadminsupport/internal/series"
)

var seriesCmd = &cobra.Command{
	Use:   "series <dir>",
	Short: "Show the grouped series and clan tally in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeries,
}

func runSeries(cmd *cobra.Command, args []string) error {
	records, err := loadCorpus(args[0])
	if err != nil {
		return err
	}

	grouped := series.NewGrouper(gapDuration()).Group(records)
	matches := series.AggregateAll(grouped)
	clans, _, totals := series.Tally(matches)

	fmt.Fprintf(os.Stdout, "\n%d series, %d maps\n\n", totals.Series, totals.Maps)
	report.PrintMatchTable(os.Stdout, matches)

	fmt.Fprintln(os.Stdout)
	report.PrintClanTable(os.Stdout, clans)
	return nil
}
