// Package report renders aggregated match and player data into the output
// formats: wiki markup, a browsable HTML report, and console tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

// wikiMapSlots is the fixed number of map slots in a MatchMaps block; series
// with fewer maps get their remaining slots left blank.
const wikiMapSlots = 3

func winnerTag(winner int) string {
	switch winner {
	case 1:
		return "1"
	case 2:
		return "2"
	default:
		return ""
	}
}

// MatchMapsBlock renders one series as a MatchMaps wiki template block.
func MatchMapsBlock(m model.MatchResult) string {
	var b strings.Builder

	b.WriteString("{{MatchMaps\n")
	fmt.Fprintf(&b, "|player1=%s |player1flag=\n", m.Team1)
	fmt.Fprintf(&b, "|player2=%s |player2flag=\n", m.Team2)
	fmt.Fprintf(&b, "|winner=%s\n", winnerTag(m.Winner))
	b.WriteString("|walkover=\n")
	fmt.Fprintf(&b, "|games1=%d |games2=%d\n", m.Wins1, m.Wins2)
	b.WriteString("|details={{BracketMatchSummary\n|date=\n|comment=\n")

	for i, mr := range m.Maps {
		n := i + 1
		fmt.Fprintf(&b, "|map%dwin=%s |map%d=%s |map%dp1frags=%d |map%dp2frags=%d |map%dp1lineup= |map%dp2lineup= |map%dot=\n",
			n, winnerTag(mr.Winner), n, mr.MapName, n, mr.Score1, n, mr.Score2, n, n, n)
	}
	for n := len(m.Maps) + 1; n <= wikiMapSlots; n++ {
		fmt.Fprintf(&b, "|map%dwin= |map%d= |map%dp1frags= |map%dp2frags= |map%dp1lineup= |map%dp2lineup= |map%dot=\n",
			n, n, n, n, n, n, n)
	}

	b.WriteString("}}\n}}")
	return b.String()
}

// WriteMatchMaps writes one MatchMaps block per match, separated by blank
// lines.
func WriteMatchMaps(w io.Writer, matches []model.MatchResult) error {
	for i, m := range matches {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, MatchMapsBlock(m)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

var wikiTableHeaders = []string{
	"Player", "Games",
	"Avg Frags", "Avg Deaths", "Avg Dmg", "EWEP", "To Die", "Eff %",
	"Avg Spd", "Max Spd",
	"RL Kills", "RL Xfer", "RL Hits", "RL Taken", "RL Drop",
	"LG Kills", "LG Taken", "LG Drop",
	"GL Kills",
	"Quad", "Pent", "Ring", "RA", "YA", "MH",
	"LG %", "SG %",
}

// PlayerWikiTable renders the cumulative player statistics as a sortable
// wikitable, one row per player. The caller supplies the lines already
// sorted (average frags descending).
func PlayerWikiTable(lines []*model.PlayerStatLine) string {
	var b strings.Builder
	b.WriteString(`{| class="wikitable sortable"` + "\n")
	b.WriteString("! " + strings.Join(wikiTableHeaders, " !! "))

	for _, l := range lines {
		if l.Games == 0 {
			continue
		}

		rl := l.Weapon("rl")
		lg := l.Weapon("lg")
		gl := l.Weapon("gl")

		nameCell := fmt.Sprintf("| | %s", l.Name)
		if l.TeamColor != "" {
			nameCell = fmt.Sprintf(`| style="border-left: 3px solid %s" | %s`, l.TeamColor, l.Name)
		}

		cols := []string{
			nameCell,
			fmt.Sprintf("%d", l.Games),
			fmt.Sprintf("%.1f", l.AvgFrags()),
			fmt.Sprintf("%.1f", l.PerGame(l.Deaths)),
			fmt.Sprintf("%d", int(l.PerGame(l.DamageGiven))),
			fmt.Sprintf("%d", int(l.PerGame(l.DamageEnemyWeapons))),
			fmt.Sprintf("%d", int(l.PerGame(l.DamageToDie))),
			fmt.Sprintf("%.1f%%", l.Efficiency.Average()*100),
			fmt.Sprintf("%d", int(l.AvgSpeed())),
			fmt.Sprintf("%d", int(l.AvgMaxSpeed())),
			fmt.Sprintf("%.1f", l.PerOpportunity(rl.Kills, "rl")),
			fmt.Sprintf("%.1f", l.PerOpportunity(rl.Xfer, "rl")),
			fmt.Sprintf("%.1f", l.PerOpportunity(rl.Hits, "rl")),
			fmt.Sprintf("%.1f", l.PerOpportunity(rl.Taken, "rl")),
			fmt.Sprintf("%.1f", l.PerOpportunity(rl.Dropped, "rl")),
			fmt.Sprintf("%.1f", l.PerOpportunity(lg.Kills, "lg")),
			fmt.Sprintf("%.1f", l.PerOpportunity(lg.Taken, "lg")),
			fmt.Sprintf("%.1f", l.PerOpportunity(lg.Dropped, "lg")),
			fmt.Sprintf("%.1f", l.PerOpportunity(gl.Kills, "gl")),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Items["q"], "quad")),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Items["p"], "pent")),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Items["r"], "ring")),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Items["ra"], "ra")),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Items["ya"], "ya")),
			fmt.Sprintf("%.1f", l.PerOpportunity(l.Items["mh"], "mh")),
			fmt.Sprintf("%.1f%%", l.LGAccuracy.Average()*100),
			fmt.Sprintf("%.1f%%", l.SGAccuracy.Average()*100),
		}

		b.WriteString("\n|-\n")
		b.WriteString(strings.Join(cols, " || "))
	}

	b.WriteString("\n|}")
	return b.String()
}
