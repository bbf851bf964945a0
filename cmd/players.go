package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Xerialen/wikiadminsupport/internal/report"
	"github.com/Xerialen/wikiadminsupport/internal/stats"
)

var (
	playersMapsConfig string
	playersOut        string
)

var playersCmd = &cobra.Command{
	Use:   "players <dir>",
	Short: "Generate cumulative player statistics as a wikitable",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().StringVar(&playersMapsConfig, "maps-config", "config/maps_items.json", "map item-availability table")
	playersCmd.Flags().StringVar(&playersOut, "out", "", "output file (default <dirname>.txt)")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	dir := args[0]

	// A missing config table is not fatal: every tracked item then counts
	// as available on every map.
	mapItems, err := stats.LoadMapItems(playersMapsConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		mapItems = nil
	} else {
		fmt.Fprintf(os.Stdout, "Loaded map config from %s\n", playersMapsConfig)
	}

	records, err := loadCorpus(dir)
	if err != nil {
		return err
	}

	acc := stats.NewAccumulator(nil, mapItems)
	for _, rec := range records {
		acc.AddGame(rec)
	}
	lines := acc.Lines()
	fmt.Fprintf(os.Stdout, "Calculated stats for %d players.\n\n", len(lines))

	report.PrintPlayerTable(os.Stdout, lines)

	out := playersOut
	if out == "" {
		out = outputName(dir, ".txt")
	}
	if err := os.WriteFile(out, []byte(report.PlayerWikiTable(lines)+"\n"), 0644); err != nil {
		return fmt.Errorf("write wikitable: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\nWiki code saved to: %s\n", out)
	return nil
}
