package series

import (
	"reflect"
	"testing"
	"time"

	"github.com/Xerialen/wikiadminsupport/internal/model"
)

var t0 = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

// makeRecord builds a minimal game record between two teams at a given time.
func makeRecord(teamA, teamB string, ts time.Time) model.GameRecord {
	pair := model.NewTeamPair(teamA, teamB)
	a, b := teamA, teamB
	if model.Normalize(b) < model.Normalize(a) {
		a, b = b, a
	}
	return model.GameRecord{
		Timestamp: ts,
		MapName:   "dm3",
		Pair:      pair,
		DisplayA:  a,
		DisplayB:  b,
	}
}

func TestGroup_MergesUnderThreshold(t *testing.T) {
	g := NewGrouper(90 * time.Minute)
	out := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Alpha", "Beta", t0.Add(89*time.Minute)),
	})
	if len(out) != 1 {
		t.Fatalf("series = %d, want 1 (89min < 90min threshold)", len(out))
	}
	if len(out[0].Maps) != 2 {
		t.Errorf("maps = %d, want 2", len(out[0].Maps))
	}
}

func TestGroup_SplitsAtExactThreshold(t *testing.T) {
	g := NewGrouper(90 * time.Minute)
	out := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Alpha", "Beta", t0.Add(90*time.Minute)),
	})
	// Gap equal to the threshold starts a new series.
	if len(out) != 2 {
		t.Fatalf("series = %d, want 2 (gap == threshold splits)", len(out))
	}
}

func TestGroup_ThreeGameScenario(t *testing.T) {
	g := NewGrouper(90 * time.Minute)
	out := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Alpha", "Beta", t0.Add(10*time.Minute)),
		makeRecord("Alpha", "Beta", t0.Add(200*time.Minute)),
	})
	if len(out) != 2 {
		t.Fatalf("series = %d, want 2", len(out))
	}
	if len(out[0].Maps) != 2 || len(out[1].Maps) != 1 {
		t.Errorf("series sizes = %d/%d, want 2/1", len(out[0].Maps), len(out[1].Maps))
	}
	if !out[0].StartTime.Equal(t0) {
		t.Errorf("first series start = %v, want %v", out[0].StartTime, t0)
	}
	if !out[1].StartTime.Equal(t0.Add(200 * time.Minute)) {
		t.Errorf("second series start = %v", out[1].StartTime)
	}
}

func TestGroup_GapMeasuresFromLastMap(t *testing.T) {
	// Each consecutive gap is under the threshold even though the series
	// spans longer than the threshold in total.
	g := NewGrouper(90 * time.Minute)
	out := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Alpha", "Beta", t0.Add(80*time.Minute)),
		makeRecord("Alpha", "Beta", t0.Add(160*time.Minute)),
	})
	if len(out) != 1 {
		t.Fatalf("series = %d, want 1 (gap measured from last appended map)", len(out))
	}
	if len(out[0].Maps) != 3 {
		t.Errorf("maps = %d, want 3", len(out[0].Maps))
	}
}

func TestGroup_InterleavedPairs(t *testing.T) {
	// A second pair playing in between must not split the first pair's
	// series: each pair tracks its own active series.
	g := NewGrouper(90 * time.Minute)
	out := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Gamma", "Delta", t0.Add(5*time.Minute)),
		makeRecord("Alpha", "Beta", t0.Add(20*time.Minute)),
		makeRecord("Gamma", "Delta", t0.Add(25*time.Minute)),
	})
	if len(out) != 2 {
		t.Fatalf("series = %d, want 2", len(out))
	}
	for _, s := range out {
		if len(s.Maps) != 2 {
			t.Errorf("series %v has %d maps, want 2", s.Pair, len(s.Maps))
		}
	}
}

func TestGroup_SortsUnsortedInput(t *testing.T) {
	g := NewGrouper(90 * time.Minute)
	sorted := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Alpha", "Beta", t0.Add(10*time.Minute)),
	})
	shuffled := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0.Add(10*time.Minute)),
		makeRecord("Alpha", "Beta", t0),
	})
	if !reflect.DeepEqual(sorted, shuffled) {
		t.Error("grouping must not depend on input order")
	}
}

func TestGroup_Deterministic(t *testing.T) {
	records := []model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Gamma", "Delta", t0),
		makeRecord("Echo", "Foxtrot", t0),
		makeRecord("Alpha", "Beta", t0.Add(30*time.Minute)),
		makeRecord("Gamma", "Delta", t0.Add(300*time.Minute)),
	}
	g := NewGrouper(90 * time.Minute)
	first := g.Group(records)
	second := g.Group(records)
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same corpus must yield identical series")
	}
}

func TestGroup_DormantPairReactivates(t *testing.T) {
	// A pair that goes dormant and comes back produces two chronologically
	// placed series, not one merged entry.
	g := NewGrouper(90 * time.Minute)
	out := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Gamma", "Delta", t0.Add(60*time.Minute)),
		makeRecord("Alpha", "Beta", t0.Add(240*time.Minute)),
	})
	if len(out) != 3 {
		t.Fatalf("series = %d, want 3", len(out))
	}
	if out[0].Pair != model.NewTeamPair("Alpha", "Beta") {
		t.Errorf("first series pair = %v", out[0].Pair)
	}
	if out[1].Pair != model.NewTeamPair("Gamma", "Delta") {
		t.Errorf("second series pair = %v", out[1].Pair)
	}
	if out[2].Pair != model.NewTeamPair("Alpha", "Beta") {
		t.Errorf("third series pair = %v", out[2].Pair)
	}
}

func TestGroup_ZeroTimestampsSortFirst(t *testing.T) {
	g := NewGrouper(90 * time.Minute)
	out := g.Group([]model.GameRecord{
		makeRecord("Alpha", "Beta", t0),
		makeRecord("Gamma", "Delta", time.Time{}),
	})
	if len(out) != 2 {
		t.Fatalf("series = %d, want 2", len(out))
	}
	if out[0].Pair != model.NewTeamPair("Gamma", "Delta") {
		t.Error("record with unparseable date must sort first")
	}
}
