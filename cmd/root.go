package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Xerialen/wikiadminsupport/internal/loader"
	"github.com/Xerialen/wikiadminsupport/internal/model"
)

var gapMinutes int

var rootCmd = &cobra.Command{
	Use:   "wikiadminsupport",
	Short: "QuakeWorld match report generator",
	Long: "Group per-map QuakeWorld stat files into multi-map series and generate\n" +
		"wiki markup, player statistics tables, and a browsable HTML report.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&gapMinutes, "gap", 90, "max minutes between games of the same series")

	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(wikiCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(seriesCmd)
}

func gapDuration() time.Duration {
	return time.Duration(gapMinutes) * time.Minute
}

// loadCorpus scans a stats directory and returns the valid game records.
// An empty result is the one fatal condition: no report is generated.
func loadCorpus(dir string) ([]model.GameRecord, error) {
	fmt.Fprintf(os.Stdout, "Scanning %s...\n", dir)
	records, err := loader.LoadDirectory(dir)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no valid game records found in %s", dir)
	}
	fmt.Fprintf(os.Stdout, "Loaded %d game records.\n", len(records))
	return records, nil
}

// outputName derives the report file name from the scanned directory, as the
// reports are usually regenerated per upload batch.
func outputName(dir, ext string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "match_overview"
	}
	return base + ext
}
