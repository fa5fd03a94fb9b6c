package usecase

import (
	"testing"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
)

func TestBuildStatMap_LastWriteWinsOnDuplicates(t *testing.T) {
	t.Parallel()

	m := BuildStatMap([]sourceapi.StatPair{
		{Name: "goalsScored", Value: 10},
		{Name: "shots", Value: 100},
		{Name: "goalsScored", Value: 12},
	})

	if got := m.Value(StatGoalsScored); got != 12 {
		t.Fatalf("goalsScored = %v, want 12 (last write wins)", got)
	}
	if got := m.Value(StatShots); got != 100 {
		t.Fatalf("shots = %v, want 100", got)
	}
}

func TestBuildStatMap_FieldOrderIrrelevant(t *testing.T) {
	t.Parallel()

	forward := BuildStatMap([]sourceapi.StatPair{
		{Name: "wins", Value: 8},
		{Name: "draws", Value: 3},
	})
	reversed := BuildStatMap([]sourceapi.StatPair{
		{Name: "draws", Value: 3},
		{Name: "wins", Value: 8},
	})

	if forward.Value(StatWins) != reversed.Value(StatWins) || forward.Value(StatDraws) != reversed.Value(StatDraws) {
		t.Fatalf("stat map output depends on input order")
	}
}

func TestStatMap_MissingKeysDefaultToZero(t *testing.T) {
	t.Parallel()

	m := BuildStatMap(nil)
	if m.Value(StatGoalsScored) != 0 || m.Int(StatWins) != 0 || m.Pct(StatPassAccuracy) != 0 {
		t.Fatalf("missing keys must read as zero")
	}
	if m.Has(StatGoalsScored) {
		t.Fatalf("Has should be false for missing keys")
	}
}

func TestStatMap_UnknownNamesLandInBucket(t *testing.T) {
	t.Parallel()

	m := BuildStatMap([]sourceapi.StatPair{
		{Name: "expectedThreat", Value: 1.7},
		{Name: "goalsScored", Value: 2},
	})

	unknown := m.UnknownStats()
	if len(unknown) != 1 || unknown["expectedThreat"] != 1.7 {
		t.Fatalf("unexpected unknown bucket: %+v", unknown)
	}
}

func TestStatMap_PctClampsRange(t *testing.T) {
	t.Parallel()

	m := BuildStatMap([]sourceapi.StatPair{
		{Name: "passAccuracy", Value: 130},
		{Name: "possession", Value: -5},
	})

	if got := m.Pct(StatPassAccuracy); got != 100 {
		t.Fatalf("Pct over 100 should clamp, got %v", got)
	}
	if got := m.Pct(StatPossession); got != 0 {
		t.Fatalf("negative Pct should clamp to 0, got %v", got)
	}
}
