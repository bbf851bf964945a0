package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintMatchTable prints the grouped series as a console table, one row per
// series in chronological order.
func PrintMatchTable(w io.Writer, matches []model.MatchResult) {
	table := newTable(w)
	table.Header("DATE", "SERVER", "TEAM 1", "TEAM 2", "SCORE", "MAPS", "WINNER")

	for _, m := range matches {
		date := "-"
		if !m.StartTime.IsZero() {
			date = m.StartTime.Format("2006-01-02 15:04")
		}
		winner := "-"
		switch m.Winner {
		case 1:
			winner = m.Team1
		case 2:
			winner = m.Team2
		}
		table.Append(
			date,
			m.Server,
			m.Team1,
			m.Team2,
			fmt.Sprintf("%d:%d", m.Wins1, m.Wins2),
			strconv.Itoa(len(m.Maps)),
			winner,
		)
	}
	table.Render()
}

// PrintClanTable prints the per-clan tally.
func PrintClanTable(w io.Writer, clans []model.ClanRecord) {
	table := newTable(w)
	table.Header("CLAN", "SERIES", "SERIES_W", "MAPS", "MAPS_W", "MAPS_L", "WIN%")

	for _, c := range clans {
		table.Append(
			c.Clan,
			strconv.Itoa(c.SeriesPlayed),
			strconv.Itoa(c.SeriesWon),
			strconv.Itoa(c.MapsPlayed),
			strconv.Itoa(c.MapsWon),
			strconv.Itoa(c.MapsLost),
			fmt.Sprintf("%.0f%%", c.WinRate()),
		)
	}
	table.Render()
}

// PrintPlayerTable prints the cumulative player statistics, one row per
// player, in the order the caller supplies (average frags descending).
func PrintPlayerTable(w io.Writer, lines []*model.PlayerStatLine) {
	table := newTable(w)
	table.Header("NAME", "GAMES", "AVG_FRAGS", "AVG_DEATHS", "AVG_DMG", "EFF%", "RL_KILLS", "LG_KILLS", "QUAD", "LG%", "SG%")

	for _, l := range lines {
		if l.Games == 0 {
			continue
		}
		table.Append(
			l.Name,
			strconv.Itoa(l.Games),
			fmt.Sprintf("%.1f", l.AvgFrags()),
			fmt.Sprintf("%.1f", l.PerGame(l.Deaths)),
			fmt.Sprintf("%.0f", l.PerGame(l.DamageGiven)),
			fmt.Sprintf("%.1f%%", l.Efficiency.Average()*100),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Weapon("rl").Kills, "rl")),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Weapon("lg").Kills, "lg")),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Items["q"], "quad")),
			fmt.Sprintf("%.1f%%", l.LGAccuracy.Average()*100),
			fmt.Sprintf("%.1f%%", l.SGAccuracy.Average()*100),
		)
	}
	table.Render()
}
