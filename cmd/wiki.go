package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Xerialen/wikiadminsupport/internal/report"
	"github.com/Xerialen/wikiadminsupport/internal/series"
)

var wikiOut string

var wikiCmd = &cobra.Command{
	Use:   "wiki <dir>",
	Short: "Generate MatchMaps wiki markup, one block per series",
	Args:  cobra.ExactArgs(1),
	RunE:  runWiki,
}

func init() {
	wikiCmd.Flags().StringVar(&wikiOut, "out", "", "also write the markup to this file")
}

func runWiki(cmd *cobra.Command, args []string) error {
	records, err := loadCorpus(args[0])
	if err != nil {
		return err
	}

	grouped := series.NewGrouper(gapDuration()).Group(records)
	matches := series.AggregateAll(grouped)
	fmt.Fprintf(os.Stdout, "Processing %d unique series...\n\n", len(matches))

	var buf bytes.Buffer
	if err := report.WriteMatchMaps(&buf, matches); err != nil {
		return fmt.Errorf("render markup: %w", err)
	}

	os.Stdout.Write(buf.Bytes())

	if wikiOut != "" {
		if err := os.WriteFile(wikiOut, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("write markup: %w", err)
		}
		fmt.Fprintf(os.Stdout, "\nWiki code saved to: %s\n", wikiOut)
	}
	return nil
}
