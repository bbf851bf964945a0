package loader

import (
	"github.com/tidwall/gjson"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

// teamNames determines the two competing team identities of a document, in
// original case. It tries the explicit teams list first (entries may be
// plain strings or {name, score} objects); when absent, it falls back to the
// distinct team fields across the scoring players, in first-appearance order.
func teamNames(root gjson.Result, players []model.PlayerGameStats) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		norm := model.Normalize(name)
		if isSpectator(norm) || seen[norm] {
			return
		}
		seen[norm] = true
		names = append(names, name)
	}

	if teams := root.Get("teams"); teams.IsArray() {
		for _, t := range teams.Array() {
			if t.IsObject() {
				add(t.Get("name").String())
			} else {
				add(t.String())
			}
		}
		return names
	}

	for _, p := range root.Get("players").Array() {
		add(p.Get("team").String())
	}
	return names
}

// resolveScore finds a team's score for this map: an explicit per-team score
// field wins, the sum of the team's player frags is the fallback.
func resolveScore(root gjson.Result, teamName string, players []model.PlayerGameStats) int {
	target := model.Normalize(teamName)

	if teams := root.Get("teams"); teams.IsArray() {
		for _, t := range teams.Array() {
			if !t.IsObject() {
				continue
			}
			if model.Normalize(t.Get("name").String()) != target {
				continue
			}
			if score := t.Get("score"); score.Exists() {
				return int(score.Int())
			}
		}
	}

	total := 0
	for _, p := range players {
		if p.Team == target {
			total += p.Frags
		}
	}
	return total
}
