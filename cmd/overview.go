package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Xerialen/wikiadminsupport/internal/report"
	"github.com/Xerialen/wikiadminsupport/internal/series"
)

var overviewOut string

var overviewCmd = &cobra.Command{
	Use:   "overview <dir>",
	Short: "Generate the browsable HTML match report",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverview,
}

func init() {
	overviewCmd.Flags().StringVar(&overviewOut, "out", "", "output file (default <dirname>.html)")
}

func runOverview(cmd *cobra.Command, args []string) error {
	dir := args[0]

	records, err := loadCorpus(dir)
	if err != nil {
		return err
	}

	grouped := series.NewGrouper(gapDuration()).Group(records)
	matches := series.AggregateAll(grouped)
	clans, dist, totals := series.Tally(matches)
	fmt.Fprintf(os.Stdout, "Processed %d series across %d maps.\n", totals.Series, totals.Maps)

	out := overviewOut
	if out == "" {
		out = outputName(dir, ".html")
	}
	title := strings.TrimSuffix(out, ".html")

	// Render fully in memory first so a template failure never leaves a
	// partial report on disk.
	var buf bytes.Buffer
	ov := report.BuildOverview(title, matches, clans, dist, totals.Series, totals.Maps)
	if err := report.WriteHTML(&buf, ov); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Report generated: %s\n", out)
	return nil
}
