package report

import (
	"strings"
	"testing"
	"time"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

func sampleMatch() model.MatchResult {
	return model.MatchResult{
		Team1:     "Alpha",
		Team2:     "Beta",
		Wins1:     2,
		Wins2:     0,
		Winner:    1,
		StartTime: time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC),
		Server:    "qw.example.net:27500",
		Maps: []model.MapResult{
			{MapName: "dm3", Score1: 150, Score2: 90, Winner: 1},
			{MapName: "dm2", Score1: 120, Score2: 120},
		},
	}
}

func TestMatchMapsBlock(t *testing.T) {
	out := MatchMapsBlock(sampleMatch())

	for _, want := range []string{
		"{{MatchMaps",
		"|player1=Alpha |player1flag=",
		"|player2=Beta |player2flag=",
		"|winner=1",
		"|games1=2 |games2=0",
		"{{BracketMatchSummary",
		"|map1win=1 |map1=dm3 |map1p1frags=150 |map1p2frags=90",
		"|map2win= |map2=dm2 |map2p1frags=120 |map2p2frags=120",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("block missing %q\n%s", want, out)
		}
	}
}

func TestMatchMapsBlock_PadsToThreeSlots(t *testing.T) {
	m := model.MatchResult{
		Team1: "Alpha", Team2: "Beta", Wins1: 1, Winner: 1,
		Maps: []model.MapResult{{MapName: "dm6", Score1: 80, Score2: 40, Winner: 1}},
	}
	out := MatchMapsBlock(m)

	if !strings.Contains(out, "|map2win= |map2= ") {
		t.Error("slot 2 not padded")
	}
	if !strings.Contains(out, "|map3win= |map3= ") {
		t.Error("slot 3 not padded")
	}
}

func TestMatchMapsBlock_UndeterminedWinnerLeftBlank(t *testing.T) {
	m := sampleMatch()
	m.Winner = 0
	out := MatchMapsBlock(m)
	if !strings.Contains(out, "|winner=\n") {
		t.Error("undetermined series should leave the winner field empty")
	}
}

func TestWriteMatchMaps_SeparatesBlocks(t *testing.T) {
	var b strings.Builder
	if err := WriteMatchMaps(&b, []model.MatchResult{sampleMatch(), sampleMatch()}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(b.String(), "{{MatchMaps"); got != 2 {
		t.Errorf("blocks = %d, want 2", got)
	}
	if !strings.Contains(b.String(), "}}\n\n{{MatchMaps") {
		t.Error("blocks should be separated by a blank line")
	}
}

func statLine(name string) *model.PlayerStatLine {
	l := &model.PlayerStatLine{
		Name:          name,
		Games:         2,
		Frags:         50,
		Deaths:        30,
		Opportunities: map[string]int{"rl": 2, "lg": 1, "quad": 2},
		Weapons:       map[string]*model.WeaponTotals{"rl": {Kills: 20, Xfer: 3}},
		Items:         map[string]int{"q": 4},
	}
	l.Efficiency.Observe(50, 80)
	l.LGAccuracy.Observe(3, 10)
	l.SGAccuracy.Observe(1, 4)
	return l
}

func TestPlayerWikiTable(t *testing.T) {
	out := PlayerWikiTable([]*model.PlayerStatLine{statLine("grl")})

	if !strings.HasPrefix(out, `{| class="wikitable sortable"`) {
		t.Error("missing wikitable opening")
	}
	if !strings.HasSuffix(out, "|}") {
		t.Error("missing wikitable closing")
	}
	for _, h := range wikiTableHeaders {
		if !strings.Contains(out, h) {
			t.Errorf("missing header %q", h)
		}
	}
	if strings.Contains(out, "!! GA !!") {
		t.Error("green armor column is not part of the table")
	}

	// 50 frags over 2 games, 20 rl kills over 2 rl opportunities, 4 quads
	// over 2 quad opportunities, lg accuracy 3/10 from its single observed
	// game.
	for _, want := range []string{"grl", "25.0", "10.0", "2.0", "62.5%", "30.0%", "25.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("row missing %q\n%s", want, out)
		}
	}
}

func TestPlayerWikiTable_TeamColorAccent(t *testing.T) {
	l := statLine("tinted")
	l.TeamColor = "#8B0000"
	out := PlayerWikiTable([]*model.PlayerStatLine{l})
	if !strings.Contains(out, `style="border-left: 3px solid #8B0000"`) {
		t.Error("missing team color accent")
	}

	plain := PlayerWikiTable([]*model.PlayerStatLine{statLine("plain")})
	if strings.Contains(plain, "border-left") {
		t.Error("accent rendered without a team color")
	}
}

func TestPlayerWikiTable_SkipsEmptyLines(t *testing.T) {
	empty := &model.PlayerStatLine{
		Name:          "ghost",
		Opportunities: map[string]int{},
		Weapons:       map[string]*model.WeaponTotals{},
		Items:         map[string]int{},
	}
	out := PlayerWikiTable([]*model.PlayerStatLine{empty})
	if strings.Contains(out, "ghost") {
		t.Error("zero-game line should not be rendered")
	}
}
