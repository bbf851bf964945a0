package series

import (
	"sort"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

// Totals are corpus-wide counts for the report header.
type Totals struct {
	Series int
	Maps   int
}

// Tally accumulates per-clan results and the map play-count distribution
// across all matches. Clans are keyed by display name; both slot assignments
// of a match contribute. Clan rows come back sorted by series won descending,
// map counts by times played descending.
func Tally(matches []model.MatchResult) ([]model.ClanRecord, []model.MapCount, Totals) {
	clans := make(map[string]*model.ClanRecord)
	dist := make(map[string]int)
	var totals Totals

	clan := func(name string) *model.ClanRecord {
		c, ok := clans[name]
		if !ok {
			c = &model.ClanRecord{Clan: name}
			clans[name] = c
		}
		return c
	}

	for _, m := range matches {
		totals.Series++
		c1, c2 := clan(m.Team1), clan(m.Team2)

		for _, mr := range m.Maps {
			totals.Maps++
			dist[mr.MapName]++
		}

		c1.MapsPlayed += len(m.Maps)
		c2.MapsPlayed += len(m.Maps)
		c1.MapsWon += m.Wins1
		c1.MapsLost += m.Wins2
		c2.MapsWon += m.Wins2
		c2.MapsLost += m.Wins1

		c1.SeriesPlayed++
		c2.SeriesPlayed++
		switch m.Winner {
		case 1:
			c1.SeriesWon++
		case 2:
			c2.SeriesWon++
		}
	}

	clanRows := make([]model.ClanRecord, 0, len(clans))
	for _, c := range clans {
		clanRows = append(clanRows, *c)
	}
	sort.SliceStable(clanRows, func(i, j int) bool {
		if clanRows[i].SeriesWon != clanRows[j].SeriesWon {
			return clanRows[i].SeriesWon > clanRows[j].SeriesWon
		}
		return clanRows[i].Clan < clanRows[j].Clan
	})

	mapRows := make([]model.MapCount, 0, len(dist))
	for name, n := range dist {
		mapRows = append(mapRows, model.MapCount{MapName: name, Count: n})
	}
	sort.SliceStable(mapRows, func(i, j int) bool {
		if mapRows[i].Count != mapRows[j].Count {
			return mapRows[i].Count > mapRows[j].Count
		}
		return mapRows[i].MapName < mapRows[j].MapName
	})

	return clanRows, mapRows, totals
}
