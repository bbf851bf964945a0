package model

import (
	"strings"
	"time"
)

// Normalize lowercases and trims a team or player name so that the same
// identity compares equal regardless of how the game server spelled it.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TeamPair is the canonical identity of the two clans in a game: normalized
// names stored in lexicographic order, so the same two teams always produce
// the same pair no matter which side came first in the source document.
type TeamPair struct {
	First  string
	Second string
}

// NewTeamPair normalizes and orders two team names into a TeamPair.
func NewTeamPair(a, b string) TeamPair {
	na, nb := Normalize(a), Normalize(b)
	if nb < na {
		na, nb = nb, na
	}
	return TeamPair{First: na, Second: nb}
}

func (p TeamPair) String() string {
	return p.First + " vs " + p.Second
}

// PlayerGameStats is the per-player payload of a single map. All alias key
// spellings from the raw document are resolved before this struct is built.
type PlayerGameStats struct {
	Name     string
	Team     string // normalized
	TopColor int

	Frags  int
	Deaths int

	DamageGiven        int
	DamageEnemyWeapons int
	DamageToDie        int

	SpeedAvg float64
	SpeedMax float64

	XferRL int

	Weapons map[string]WeaponGameStats // keyed by weapon code: rl, lg, gl, sng, ng, ssg, sg
	Items   map[string]int             // pickups taken, keyed by item code: q, p, r, ra, ya, ga, mh
}

// WeaponGameStats holds one weapon's counters for a single map.
type WeaponGameStats struct {
	Kills   int
	Hits    int
	Attacks int
	Taken   int
	Dropped int
}

// GameRecord is one played map, normalized from a raw stat document.
// Immutable once built by the loader.
type GameRecord struct {
	Timestamp time.Time // zero when the source date was missing or unparseable
	MapName   string
	Server    string

	Pair TeamPair

	// Display names in original case; slot order matches Pair (DisplayA is
	// the display form of Pair.First).
	DisplayA string
	DisplayB string

	ScoreA int
	ScoreB int

	// Scoring players only, in document order. Spectators never appear here.
	Players []PlayerGameStats

	SourceFile string
}

// Roster returns the players on the given normalized team, in document order.
func (r *GameRecord) Roster(team string) []PlayerGameStats {
	var out []PlayerGameStats
	for _, p := range r.Players {
		if p.Team == team {
			out = append(out, p)
		}
	}
	return out
}

// Series is one or more consecutive maps between the same two teams within
// the gap threshold. Mutable while the grouper owns it, sealed after.
type Series struct {
	Pair      TeamPair
	Maps      []GameRecord
	StartTime time.Time
	LastTime  time.Time
	Server    string // server of the most recently appended map
}

// RosterEntry is one player line in a rendered map result.
type RosterEntry struct {
	Name  string
	Frags int
}

// MapResult is one map of an aggregated match.
type MapResult struct {
	MapName    string
	SourceFile string
	Score1     int
	Score2     int
	Winner     int           // 1, 2, or 0 for a tie
	Roster1    []RosterEntry // sorted by frags descending
	Roster2    []RosterEntry
}

// MatchResult is a sealed series with winners computed. Team1 is always the
// alphabetically-first team so regeneration is deterministic.
type MatchResult struct {
	Team1     string
	Team2     string
	StartTime time.Time
	Server    string
	Maps      []MapResult
	Wins1     int
	Wins2     int
	Winner    int // 1, 2, or 0 when the map-win tally is even
}

// ClanRecord accumulates one clan's results across all matches.
type ClanRecord struct {
	Clan         string
	SeriesPlayed int
	SeriesWon    int
	MapsPlayed   int
	MapsWon      int
	MapsLost     int
}

// WinRate returns the percentage of series won, 0 when none were played.
func (c ClanRecord) WinRate() float64 {
	if c.SeriesPlayed == 0 {
		return 0
	}
	return float64(c.SeriesWon) / float64(c.SeriesPlayed) * 100
}

// MapCount is one entry in the map play-count distribution.
type MapCount struct {
	MapName string
	Count   int
}

// WeaponTotals are cumulative per-weapon counters for one player.
type WeaponTotals struct {
	Kills   int
	Hits    int
	Taken   int
	Dropped int
	Xfer    int // rocket launcher only
}

// RatioAccum accumulates a per-game ratio for later averaging. Games where
// the denominator was zero contribute to neither Sum nor Count.
type RatioAccum struct {
	Sum   float64
	Count int
}

// Observe adds one game's ratio when the denominator is strictly positive.
func (r *RatioAccum) Observe(num, den int) {
	if den > 0 {
		r.Sum += float64(num) / float64(den)
		r.Count++
	}
}

// Average returns the mean of the observed per-game ratios, 0 when no game
// had a defined ratio.
func (r RatioAccum) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	return r.Sum / float64(r.Count)
}

// PlayerStatLine is one player's cumulative totals across the whole corpus,
// keyed by normalized name. Averages are computed at render time against the
// per-item opportunity counts, which gate on map item availability.
type PlayerStatLine struct {
	Name      string // display form, first seen
	TeamColor string // hex color from top-color, first seen; empty if unknown

	Games         int
	Opportunities map[string]int // item/weapon code -> games where it was obtainable

	Frags              int
	Deaths             int
	DamageGiven        int
	DamageEnemyWeapons int
	DamageToDie        int

	SpeedSum    float64
	SpeedMaxSum float64

	Weapons map[string]*WeaponTotals // rl, lg, gl, sng, ng, ssg
	Items   map[string]int           // q, p, r, ra, ya, ga, mh

	Efficiency RatioAccum // frags / (frags+deaths), per game
	LGAccuracy RatioAccum // lg hits / attacks, per game
	SGAccuracy RatioAccum // sg hits / attacks, per game
}

func safeDiv(n float64, d int) float64 {
	if d <= 0 {
		return 0
	}
	return n / float64(d)
}

// PerGame divides a cumulative total by games played.
func (l *PlayerStatLine) PerGame(total int) float64 {
	return safeDiv(float64(total), l.Games)
}

// AvgFrags is the sort key for rendered player tables.
func (l *PlayerStatLine) AvgFrags() float64 { return l.PerGame(l.Frags) }

func (l *PlayerStatLine) AvgSpeed() float64    { return safeDiv(l.SpeedSum, l.Games) }
func (l *PlayerStatLine) AvgMaxSpeed() float64 { return safeDiv(l.SpeedMaxSum, l.Games) }

// Opportunity returns the opportunity count for an item code. The rocket
// launcher falls back to games played when its count is somehow zero, since
// it is assumed present on every map.
func (l *PlayerStatLine) Opportunity(code string) int {
	n := l.Opportunities[code]
	if code == "rl" && n == 0 {
		return l.Games
	}
	return n
}

// PerOpportunity divides a cumulative total by the opportunity count of the
/// given item code. A zero count yields 0, not NaN: an item that was never
// obtainable has both numerator and denominator at zero.
func (l *PlayerStatLine) PerOpportunity(total int, code string) float64 {
	return safeDiv(float64(total), l.Opportunity(code))
}

// Weapon returns the cumulative totals for a weapon code, allocating on
// first use.
func (l *PlayerStatLine) Weapon(code string) *WeaponTotals {
	w, ok := l.Weapons[code]
	if !ok {
		w = &WeaponTotals{}
		l.Weapons[code] = w
	}
	return w
}
