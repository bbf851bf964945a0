// Package series clusters individual game records into multi-map series and
// aggregates each series into a match result.
package series

import (
	"sort"
	"time"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

// DefaultGap is the maximum time between consecutive games of the same team
// pair for them to count as one series.
const DefaultGap = 90 * time.Minute

// Grouper clusters game records into series by team pair and time gap. The
// gap rule is strict: two games separated by exactly the threshold belong to
// separate series.
type Grouper struct {
	Gap time.Duration
}

// NewGrouper returns a Grouper with the given gap threshold; a non-positive
// gap falls back to DefaultGap.
func NewGrouper(gap time.Duration) *Grouper {
	if gap <= 0 {
		gap = DefaultGap
	}
	return &Grouper{Gap: gap}
}

// Group clusters the records into series. Input order does not matter: the
// records are sorted chronologically first, since the clustering depends on
// it. Each distinct team pair tracks its own active series, so interleaved
// series between different pairs do not split each other. Emitted series are
// ordered by start time.
func (g *Grouper) Group(records []model.GameRecord) []model.Series {
	sorted := make([]model.GameRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	active := make(map[model.TeamPair]*model.Series)
	var sealed []model.Series

	for _, rec := range sorted {
		cur, ok := active[rec.Pair]
		if ok && rec.Timestamp.Sub(cur.LastTime) < g.Gap {
			cur.Maps = append(cur.Maps, rec)
			cur.LastTime = rec.Timestamp
			cur.Server = rec.Server
			continue
		}
		if ok {
			sealed = append(sealed, *cur)
		}
		active[rec.Pair] = &model.Series{
			Pair:      rec.Pair,
			Maps:      []model.GameRecord{rec},
			StartTime: rec.Timestamp,
			LastTime:  rec.Timestamp,
			Server:    rec.Server,
		}
	}

	for _, s := range active {
		sealed = append(sealed, *s)
	}

	// Map iteration above is unordered; the start-time sort with a pair
	// tie-break makes the output deterministic.
	sort.SliceStable(sealed, func(i, j int) bool {
		if !sealed[i].StartTime.Equal(sealed[j].StartTime) {
			return sealed[i].StartTime.Before(sealed[j].StartTime)
		}
		return sealed[i].Pair.String() < sealed[j].Pair.String()
	})
	return sealed
}
