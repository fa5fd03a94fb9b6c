package usecase

import (
	"testing"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
)

func TestPerGameRate_ClampsDenominatorToOne(t *testing.T) {
	t.Parallel()

	if got := perGameRate(10, 0); got != 10.0 {
		t.Fatalf("perGameRate(10, 0) = %v, want 10.0", got)
	}
	if got := perGameRate(10, 4); got != 2.5 {
		t.Fatalf("perGameRate(10, 4) = %v, want 2.5", got)
	}
	if got := perGameRate(0, 0); got != 0 {
		t.Fatalf("perGameRate(0, 0) = %v, want 0", got)
	}
}

func TestHomeAwaySplit(t *testing.T) {
	t.Parallel()

	home, away := homeAwaySplit(10)
	if home != 6 || away != 4 {
		t.Fatalf("split(10) = (%d, %d), want (6, 4)", home, away)
	}

	home, away = homeAwaySplit(0)
	if home != 0 || away != 0 {
		t.Fatalf("split(0) = (%d, %d), want (0, 0)", home, away)
	}

	// Rounded shares may not sum back to the total; 3 -> 2 + 1.
	home, away = homeAwaySplit(3)
	if home != 2 || away != 1 {
		t.Fatalf("split(3) = (%d, %d), want (2, 1)", home, away)
	}
}

func TestTeamRating_ExactRounding(t *testing.T) {
	t.Parallel()

	// 10*(0.4*0.5 + 0.3*0.75 + 0.3*(1-1/3)) = 6.25, half-up to 6.3.
	if got := teamRating(0.5, 1.5, 1.0); got != 6.3 {
		t.Fatalf("teamRating(0.5, 1.5, 1.0) = %v, want 6.3", got)
	}
}

func TestTeamRating_DefensiveTermFloorsAtZero(t *testing.T) {
	t.Parallel()

	// concededPerGame 6 would give a negative defensive term.
	withFloor := teamRating(0, 0, 6)
	if withFloor != 0 {
		t.Fatalf("teamRating(0, 0, 6) = %v, want 0", withFloor)
	}
}

func TestClassifyPosition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want player.Position
	}{
		{"CB", player.PositionDefender},
		{"XX", player.PositionMidfielder},
		{"", player.PositionMidfielder},
		{"Goalkeeper", player.PositionGoalkeeper},
		{"GK", player.PositionGoalkeeper},
		{"Right Back", player.PositionDefender},
		{"Central Midfielder", player.PositionMidfielder},
		{"CDM", player.PositionMidfielder},
		{"Striker", player.PositionForward},
		{"LW", player.PositionForward},
	}
	for _, tc := range cases {
		if got := classifyPosition(tc.code); got != tc.want {
			t.Errorf("classifyPosition(%q) = %s, want %s", tc.code, got, tc.want)
		}
	}
}

func TestInferFormation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		possession float64
		offensive  int
		defensive  int
		want       string
	}{
		{60, 100, 50, "4-3-3"},
		{45, 100, 50, "4-2-3-1"},
		{50, 50, 100, "5-4-1"},
		{50, 70, 70, "4-4-2"},
		{0, 0, 0, "4-4-2"},
	}
	for _, tc := range cases {
		got := inferFormation(tc.possession, tc.offensive, tc.defensive)
		if got != tc.want {
			t.Errorf("inferFormation(%v, %d, %d) = %s, want %s", tc.possession, tc.offensive, tc.defensive, got, tc.want)
		}
	}
}

func TestSuccessfulSeason(t *testing.T) {
	t.Parallel()

	if successfulSeason(7, 9) {
		t.Fatalf("9 matches should never qualify")
	}
	if successfulSeason(7, 10) {
		t.Fatalf("0.70 exactly should not qualify, the rate must exceed it")
	}
	if !successfulSeason(8, 10) {
		t.Fatalf("0.80 over 10 matches should qualify")
	}
}

func TestCareerPointsAndPointsPerGame(t *testing.T) {
	t.Parallel()

	if got := careerPoints(10, 4); got != 34 {
		t.Fatalf("careerPoints(10, 4) = %d, want 34", got)
	}
	// 34 points over 16 matches = 2.125, half-up to 2.13.
	if got := pointsPerGame(34, 16); got != 2.13 {
		t.Fatalf("pointsPerGame(34, 16) = %v, want 2.13", got)
	}
	if got := pointsPerGame(5, 0); got != 5.0 {
		t.Fatalf("pointsPerGame(5, 0) = %v, want 5.0", got)
	}
}

func TestSquadEstimatesAreDeterministic(t *testing.T) {
	t.Parallel()

	if got := estimateSquadSize(10); got != 26 {
		t.Fatalf("estimateSquadSize(10) = %d, want 26", got)
	}
	if got := estimateForeignPlayers(26); got != 9 {
		t.Fatalf("estimateForeignPlayers(26) = %d, want 9", got)
	}
	if got := estimateAverageAge(10); got != 25.5 {
		t.Fatalf("estimateAverageAge(10) = %v, want 25.5", got)
	}
}

func TestPlayerTraits_PassingFloorAndShootingRatio(t *testing.T) {
	t.Parallel()

	stats := BuildStatMap([]sourceapi.StatPair{
		{Name: "passes", Value: 40},
		{Name: "passAccuracy", Value: 90},
		{Name: "shots", Value: 20},
		{Name: "shotsOnTarget", Value: 9},
	})

	traits := playerTraits(stats, 20)

	// 40 passes over 20 matches = 2/game * 1.6 = 3.2, floored by 90*0.8.
	if traits.Passing != 72.0 {
		t.Fatalf("passing = %v, want 72.0 (passAccuracy floor)", traits.Passing)
	}
	// Shooting is a ratio over raw totals, not a per-game rate.
	if traits.Shooting != 45.0 {
		t.Fatalf("shooting = %v, want 45.0", traits.Shooting)
	}
}

func TestPlayerTraits_ShootingZeroWithoutShots(t *testing.T) {
	t.Parallel()

	traits := playerTraits(BuildStatMap(nil), 10)
	if traits.Shooting != 0 {
		t.Fatalf("shooting = %v, want 0 when the player never shot", traits.Shooting)
	}
}

func TestPlayerTraits_ScoresStayInRange(t *testing.T) {
	t.Parallel()

	stats := BuildStatMap([]sourceapi.StatPair{
		{Name: "goalsScored", Value: 500},
		{Name: "assists", Value: 400},
		{Name: "dribbles", Value: 900},
		{Name: "tackles", Value: 900},
		{Name: "duelsWon", Value: 900},
	})

	traits := playerTraits(stats, 1)
	for name, score := range map[string]float64{
		"attacking": traits.Attacking,
		"dribbling": traits.Dribbling,
		"physical":  traits.Physical,
		"passing":   traits.Passing,
		"shooting":  traits.Shooting,
		"defending": traits.Defending,
		"tackling":  traits.Tackling,
		"duels":     traits.Duels,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s = %v, out of [0, 100]", name, score)
		}
	}
}

func TestSyntheticMapsAreDeterministicPerPlayer(t *testing.T) {
	t.Parallel()

	a := syntheticHeatmap(99, player.PositionForward)
	b := syntheticHeatmap(99, player.PositionForward)
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("heatmap lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("heatmap point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}

	stats := BuildStatMap([]sourceapi.StatPair{
		{Name: "shots", Value: 5},
		{Name: "shotsOnTarget", Value: 2},
	})
	shots := syntheticShotmap(7, stats)
	if len(shots) != 5 {
		t.Fatalf("expected 5 shot points, got %d", len(shots))
	}
	onGoal := 0
	for _, p := range shots {
		if p.OnGoal {
			onGoal++
		}
	}
	if onGoal != 2 {
		t.Fatalf("expected 2 on-goal shots, got %d", onGoal)
	}
}

func TestRoundHalfUp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{6.25, 1, 6.3},
		{2.125, 2, 2.13},
		{1.04, 1, 1.0},
		{0.5, 0, 1},
	}
	for _, tc := range cases {
		if got := roundHalfUp(tc.v, tc.decimals); got != tc.want {
			t.Errorf("roundHalfUp(%v, %d) = %v, want %v", tc.v, tc.decimals, got, tc.want)
		}
	}
}
