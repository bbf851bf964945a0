package stats

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

// DefaultTrackedItems are the item/weapon codes whose per-game opportunities
// are counted. The rocket launcher and shotgun are not listed: they are
// treated as present on every map.
var DefaultTrackedItems = []string{
	// weapons
	"lg", "gl", "sng", "ng", "ssg",
	// armor / health
	"mh", "ra", "ya", "ga",
	// powerups
	"pent", "ring", "quad",
}

// quakeColors maps the standard Quake top-color values to display colors for
// report row accents.
var quakeColors = map[int]string{
	0:  "#D3D3D3",
	1:  "#8B4513",
	2:  "#D8BFD8",
	3:  "#008000",
	4:  "#8B0000",
	12: "#FFFF00",
	13: "#0000FF",
}

// TeamColor returns the display color for a top-color value, empty when the
// value is not a standard color.
func TeamColor(topColor int) string {
	return quakeColors[topColor]
}

// LoadMapItems reads the map -> available-items table from a JSON file. The
// caller decides what to do when the file is absent; an empty table makes
// every tracked item count as available on every map.
func LoadMapItems(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read maps config: %w", err)
	}
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse maps config %s: %w", path, err)
	}
	table := make(map[string][]string, len(raw))
	for name, items := range raw {
		table[model.Normalize(name)] = items
	}
	return table, nil
}
