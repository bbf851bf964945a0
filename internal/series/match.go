package series

import (
	"sort"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

// Aggregate computes per-map winners, the map-win tally, and the series
// winner for a sealed series. Slot 1 is the alphabetically-first team. A map
// with equal scores credits neither side; an even map-win tally leaves the
// series winner undetermined (0), never defaulted to slot 1.
func Aggregate(s model.Series) model.MatchResult {
	m := model.MatchResult{
		StartTime: s.StartTime,
		Server:    s.Server,
	}
	if len(s.Maps) == 0 {
		return m
	}

	// All maps in a series share the pair, so display names come from the
	// first map; the loader already put them in slot order.
	first := s.Maps[0]
	m.Team1 = first.DisplayA
	m.Team2 = first.DisplayB

	for _, rec := range s.Maps {
		mr := model.MapResult{
			MapName:    rec.MapName,
			SourceFile: rec.SourceFile,
			Score1:     rec.ScoreA,
			Score2:     rec.ScoreB,
			Roster1:    rosterByFrags(rec.Roster(rec.Pair.First)),
			Roster2:    rosterByFrags(rec.Roster(rec.Pair.Second)),
		}
		switch {
		case mr.Score1 > mr.Score2:
			mr.Winner = 1
			m.Wins1++
		case mr.Score2 > mr.Score1:
			mr.Winner = 2
			m.Wins2++
		}
		m.Maps = append(m.Maps, mr)
	}

	switch {
	case m.Wins1 > m.Wins2:
		m.Winner = 1
	case m.Wins2 > m.Wins1:
		m.Winner = 2
	}
	return m
}

// AggregateAll aggregates every series, preserving order.
func AggregateAll(series []model.Series) []model.MatchResult {
	out := make([]model.MatchResult, 0, len(series))
	for _, s := range series {
		out = append(out, Aggregate(s))
	}
	return out
}

func rosterByFrags(players []model.PlayerGameStats) []model.RosterEntry {
	out := make([]model.RosterEntry, 0, len(players))
	for _, p := range players {
		out = append(out, model.RosterEntry{Name: p.Name, Frags: p.Frags})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frags > out[j].Frags
	})
	return out
}
