// Package stats accumulates per-player cumulative totals across an entire
// corpus of game records. This pass is independent of series grouping.
//
// Every average reported later divides by an "opportunity" count: the number
// of games where that item was actually obtainable on the played map. The
// rocket launcher is the one weapon assumed universally present, so its
// opportunity advances every game regardless of map configuration.
package stats

import (
	"sort"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

// gatedWeapons accumulate only on maps where the map configuration lists
// them; the rocket launcher is handled separately.
var gatedWeapons = []string{"lg", "gl", "sng", "ng", "ssg"}

// itemGates maps the internal item code to the availability code used in the
// map configuration.
var itemGates = map[string]string{
	"q":  "quad",
	"p":  "pent",
	"r":  "ring",
	"ra": "ra",
	"ya": "ya",
	"ga": "ga",
	"mh": "mh",
}

// Accumulator builds PlayerStatLines from game records. Threshold-free and
// order-independent: feeding the same corpus in any order yields the same
// totals.
type Accumulator struct {
	tracked  []string
	mapItems map[string][]string
	players  map[string]*model.PlayerStatLine
}

// NewAccumulator returns an Accumulator using the given tracked-item list
// and map availability table. A nil tracked list means DefaultTrackedItems;
// a map absent from the table counts as having every tracked item.
func NewAccumulator(tracked []string, mapItems map[string][]string) *Accumulator {
	if tracked == nil {
		tracked = DefaultTrackedItems
	}
	if mapItems == nil {
		mapItems = map[string][]string{}
	}
	return &Accumulator{
		tracked:  tracked,
		mapItems: mapItems,
		players:  make(map[string]*model.PlayerStatLine),
	}
}

// availableOn returns the set of item codes obtainable on a map. Maps absent
// from the configuration default to all tracked items.
func (a *Accumulator) availableOn(mapName string) map[string]bool {
	items, ok := a.mapItems[model.Normalize(mapName)]
	if !ok {
		items = a.tracked
	}
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

func (a *Accumulator) line(p model.PlayerGameStats) *model.PlayerStatLine {
	key := model.Normalize(p.Name)
	l, ok := a.players[key]
	if !ok {
		l = &model.PlayerStatLine{
			Name:          p.Name,
			TeamColor:     TeamColor(p.TopColor),
			Opportunities: make(map[string]int),
			Weapons:       make(map[string]*model.WeaponTotals),
			Items:         make(map[string]int),
		}
		a.players[key] = l
	}
	return l
}

// AddGame folds one game record into the accumulator.
func (a *Accumulator) AddGame(rec model.GameRecord) {
	avail := a.availableOn(rec.MapName)
	for _, p := range rec.Players {
		a.addPlayer(avail, p)
	}
}

func (a *Accumulator) addPlayer(avail map[string]bool, p model.PlayerGameStats) {
	l := a.line(p)
	l.Games++

	for it := range avail {
		l.Opportunities[it]++
	}
	l.Opportunities["rl"]++

	l.Frags += p.Frags
	l.Deaths += p.Deaths
	l.DamageGiven += p.DamageGiven
	l.DamageEnemyWeapons += p.DamageEnemyWeapons
	l.DamageToDie += p.DamageToDie
	l.SpeedSum += p.SpeedAvg
	l.SpeedMaxSum += p.SpeedMax

	// Zero-engagement games stay out of the efficiency average entirely.
	l.Efficiency.Observe(p.Frags, p.Frags+p.Deaths)

	rl := l.Weapon("rl")
	if w, ok := p.Weapons["rl"]; ok {
		rl.Kills += w.Kills
		rl.Hits += w.Hits
		rl.Taken += w.Taken
		rl.Dropped += w.Dropped
	}
	rl.Xfer += p.XferRL

	for _, code := range gatedWeapons {
		if !avail[code] {
			continue
		}
		w, ok := p.Weapons[code]
		if !ok {
			continue
		}
		t := l.Weapon(code)
		t.Kills += w.Kills
		t.Hits += w.Hits
		t.Taken += w.Taken
		t.Dropped += w.Dropped
	}

	if avail["lg"] {
		w := p.Weapons["lg"]
		l.LGAccuracy.Observe(w.Hits, w.Attacks)
	}
	// The shotgun is a spawn weapon; its accuracy is tracked on every map.
	sg := p.Weapons["sg"]
	l.SGAccuracy.Observe(sg.Hits, sg.Attacks)

	for code, gate := range itemGates {
		if avail[gate] {
			l.Items[code] += p.Items[code]
		}
	}
}

// Lines returns all accumulated stat lines sorted by average frags
// descending, name ascending on ties.
func (a *Accumulator) Lines() []*model.PlayerStatLine {
	out := make([]*model.PlayerStatLine, 0, len(a.players))
	for _, l := range a.players {
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		fi, fj := out[i].AvgFrags(), out[j].AvgFrags()
		if fi != fj {
			return fi > fj
		}
		return out[i].Name < out[j].Name
	})
	return out
}
