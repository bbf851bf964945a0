// Package loader reads raw per-map stat documents produced by the game
// server and normalizes them into GameRecords. One JSON document per played
// map; a document that cannot be resolved to exactly two scoring teams is
// not an error, it is simply excluded from the corpus.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

const dateLayout = "2006-01-02 15:04:05"

// parseDate accepts "YYYY-MM-DD HH:MM:SS" optionally followed by a timezone
// offset or other trailing junk. Unparseable dates yield the zero time so
// they sort first instead of aborting the batch.
func parseDate(s string) time.Time {
	if i := strings.Index(s, "+"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// pick returns the first existing value among the given alias paths.
func pick(v gjson.Result, paths ...string) gjson.Result {
	for _, path := range paths {
		if r := v.Get(path); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

var weaponCodes = []string{"rl", "lg", "gl", "sng", "ng", "ssg", "sg"}

// itemKeys maps the JSON item key to the internal item code. The megahealth
// is reported by the server under "health_100".
var itemKeys = map[string]string{
	"q":          "q",
	"p":          "p",
	"r":          "r",
	"ra":         "ra",
	"ya":         "ya",
	"ga":         "ga",
	"health_100": "mh",
}

func isSpectator(team string) bool {
	return team == "" || team == "spec" || team == "spectator"
}

// parsePlayers extracts the scoring players from a document. Spectators and
// players without a team are dropped entirely.
func parsePlayers(root gjson.Result) []model.PlayerGameStats {
	var out []model.PlayerGameStats
	for _, p := range root.Get("players").Array() {
		team := model.Normalize(p.Get("team").String())
		if isSpectator(team) {
			continue
		}

		ps := model.PlayerGameStats{
			Name:     p.Get("name").String(),
			Team:     team,
			TopColor: int(p.Get("top-color").Int()),

			Frags:  int(pick(p, "stats.frags", "frags").Int()),
			Deaths: int(pick(p, "stats.deaths", "deaths").Int()),

			DamageGiven:        int(p.Get("dmg.given").Int()),
			DamageEnemyWeapons: int(pick(p, "dmg.enemy-weapons", "dmg.enemy_weapons").Int()),
			DamageToDie:        int(pick(p, "dmg.taken-to-die", "dmg.taken_to_die").Int()),

			SpeedAvg: p.Get("speed.avg").Float(),
			SpeedMax: p.Get("speed.max").Float(),

			XferRL: int(p.Get("xferRL").Int()),

			Weapons: make(map[string]model.WeaponGameStats),
			Items:   make(map[string]int),
		}

		for _, code := range weaponCodes {
			w := p.Get("weapons." + code)
			if !w.Exists() {
				continue
			}
			ps.Weapons[code] = model.WeaponGameStats{
				Kills:   int(w.Get("kills.enemy").Int()),
				Hits:    int(w.Get("acc.hits").Int()),
				Attacks: int(w.Get("acc.attacks").Int()),
				Taken:   int(w.Get("pickups.total-taken").Int()),
				Dropped: int(w.Get("pickups.dropped").Int()),
			}
		}

		for key, code := range itemKeys {
			it := p.Get("items." + key)
			if !it.Exists() {
				continue
			}
			ps.Items[code] = int(pick(it, "took", "taken").Int())
		}

		out = append(out, ps)
	}
	return out
}

// ParseRecord normalizes one raw stat document. It returns (nil, nil) for a
// document that is valid JSON but does not describe a two-team game; that is
// an expected filter condition, not an error.
func ParseRecord(doc []byte, sourceFile string) (*model.GameRecord, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("invalid JSON in %s", sourceFile)
	}
	root := gjson.ParseBytes(doc)

	players := parsePlayers(root)
	names := teamNames(root, players)
	if len(names) != 2 {
		return nil, nil
	}

	// Slot 1 is the alphabetically-first team, so repeated runs over the
	// same data always assign the same display slots.
	sort.Slice(names, func(i, j int) bool {
		return model.Normalize(names[i]) < model.Normalize(names[j])
	})

	rec := &model.GameRecord{
		Timestamp:  parseDate(root.Get("date").String()),
		MapName:    model.Normalize(root.Get("map").String()),
		Server:     pick(root, "server", "hostname").String(),
		Pair:       model.NewTeamPair(names[0], names[1]),
		DisplayA:   strings.TrimSpace(names[0]),
		DisplayB:   strings.TrimSpace(names[1]),
		ScoreA:     resolveScore(root, names[0], players),
		ScoreB:     resolveScore(root, names[1], players),
		Players:    players,
		SourceFile: sourceFile,
	}
	return rec, nil
}

// LoadDirectory recursively scans dir for *.json stat documents and returns
// the valid game records. A file that cannot be read or parsed is logged and
// skipped; only a missing directory is fatal.
func LoadDirectory(dir string) ([]model.GameRecord, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}

	var records []model.GameRecord
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipped %s: %v\n", path, err)
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipped %s: %v\n", filepath.Base(path), err)
			return nil
		}
		rec, err := ParseRecord(data, filepath.Base(path))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipped %s: %v\n", filepath.Base(path), err)
			return nil
		}
		if rec != nil {
			records = append(records, *rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
