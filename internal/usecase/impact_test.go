package usecase

import (
	"math"
	"testing"

	"github.com/riskibarqy/nba-projection/internal/domain/player"
	"github.com/riskibarqy/nba-projection/internal/domain/projection"
	"github.com/stretchr/testify/require"
)

func starStats() player.Stats {
	full := 100.0
	return player.Stats{
		Name:           "Jayson Tatum",
		Position:       "F",
		GamesPlayed:    60,
		Minutes:        1920,
		MinutesPerGame: 32,
		UsageRate:      30,
		UsageLast10:    30,
		NetRating:      3,
		OffRating:      125,
		DefRating:      108,
		StarterOverlap: &full,
	}
}

func TestRegressedImpact_CapsByTier(t *testing.T) {
	t.Parallel()

	off, def := RegressedImpact(125, 108, projection.Tier1)
	require.InDelta(t, 6.0, off, 1e-9)
	require.InDelta(t, -4.9, def, 1e-9)

	off, def = RegressedImpact(125, 100, projection.Tier2)
	require.InDelta(t, 3.0, off, 1e-9)
	require.InDelta(t, -3.0, def, 1e-9)

	off, def = RegressedImpact(130, 100, projection.Tier3)
	if off != 0 || def != 0 {
		t.Fatalf("expected zero impact for tier3, got=(%v,%v)", off, def)
	}
}

func TestCalculatePlayerImpact_Tier1Star(t *testing.T) {
	t.Parallel()

	got := CalculatePlayerImpact(starStats(), "Boston Celtics")
	if !got.Eligible || got.Tier != projection.Tier1 {
		t.Fatalf("expected eligible Tier1, got=%+v", got)
	}
	require.InDelta(t, 6.0, got.OffImpact, 1e-9)
	require.InDelta(t, -4.9, got.DefImpact, 1e-9)
	if got.VegasAdjustments == nil {
		t.Fatalf("expected vegas adjustments for eligible player")
	}
	require.InDelta(t, 1.0, got.VegasAdjustments.TotalOffMultiplier, 1e-9)
	require.InDelta(t, 1.0, got.VegasAdjustments.TotalDefMultiplier, 1e-9)
}

func TestCalculatePlayerImpact_RimProtectorExceedsCapAfterWeighting(t *testing.T) {
	t.Parallel()

	stats := starStats()
	stats.Position = "C"
	stats.DefRating = 100
	got := CalculatePlayerImpact(stats, "Boston Celtics")

	require.InDelta(t, -8.4, got.DefImpact, 1e-9)
	if math.Abs(got.DefImpact) <= projection.Tier1.Cap() {
		t.Fatalf("expected post-cap def-role amplification, got=%v", got.DefImpact)
	}
	require.InDelta(t, 1.4, got.VegasAdjustments.DefRoleWeight, 1e-9)
}

func TestCalculatePlayerImpact_Weights(t *testing.T) {
	t.Parallel()

	stats := starStats()
	stats.Position = "G"
	stats.GamesPlayed = 14
	stats.Minutes = 448
	overlap := 40.0
	stats.StarterOverlap = &overlap

	got := CalculatePlayerImpact(stats, "Boston Celtics")
	if !got.Eligible {
		t.Fatalf("expected eligible, got filters=%+v", got.FilterResults)
	}
	// 6.0 * 0.8 * 0.6 and -4.9 * 0.8 * 1.2 * 0.6
	require.InDelta(t, 2.9, got.OffImpact, 1e-9)
	require.InDelta(t, -2.8, got.DefImpact, 1e-9)
	require.InDelta(t, 0.48, got.VegasAdjustments.TotalOffMultiplier, 1e-9)
	require.InDelta(t, 0.58, got.VegasAdjustments.TotalDefMultiplier, 1e-9)
}

func TestCalculatePlayerImpact_MissingOverlapUsesMinutes(t *testing.T) {
	t.Parallel()

	stats := starStats()
	stats.StarterOverlap = nil
	stats.MinutesPerGame = 24
	got := CalculatePlayerImpact(stats, "Boston Celtics")
	require.InDelta(t, 0.5, got.VegasAdjustments.LineupWeight, 1e-9)

	stats.MinutesPerGame = 25
	got = CalculatePlayerImpact(stats, "Boston Celtics")
	require.InDelta(t, 1.0, got.VegasAdjustments.LineupWeight, 1e-9)
}

func TestCalculatePlayerImpact_IneligibleIsZero(t *testing.T) {
	t.Parallel()

	stats := starStats()
	stats.NetRating = 0.5
	got := CalculatePlayerImpact(stats, "Boston Celtics")
	if got.Eligible || got.OffImpact != 0 || got.DefImpact != 0 || got.VegasAdjustments != nil {
		t.Fatalf("expected zero impact without adjustments, got=%+v", got)
	}
}

func TestLineupWeight(t *testing.T) {
	t.Parallel()

	cases := map[float64]float64{100: 1.0, 60: 1.0, 59.9: 0.8, 30: 0.8, 29.9: 0.5, 0: 0.5}
	for overlap, want := range cases {
		if got := LineupWeight(overlap); got != want {
			t.Fatalf("LineupWeight(%v) expected=%v got=%v", overlap, want, got)
		}
	}
}
