package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaceTotalAdjustment_StepFunction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		delta float64
		want  float64
	}{
		{delta: 11, want: 4},
		{delta: 4, want: 2},
		{delta: 2.5, want: 2},
		{delta: 2, want: 0},
		{delta: 0, want: 0},
		{delta: -2, want: 0},
		{delta: -3, want: -2},
		{delta: -4, want: -2},
		{delta: -4.1, want: -4},
	}

	for _, tc := range cases {
		if got := PaceTotalAdjustment(tc.delta); got != tc.want {
			t.Fatalf("delta=%v: got=%v want=%v", tc.delta, got, tc.want)
		}
	}
}

func TestApplyPace_FastMatchupRaisesTotal(t *testing.T) {
	t.Parallel()

	got := ApplyPace(225.4, 105, 104, true)

	if !got.Enabled {
		t.Fatalf("expected enabled record")
	}
	require.InDelta(t, 12.0, got.PaceDelta, 1e-9)
	require.InDelta(t, 4.0, got.PaceTotalAdj, 1e-9)
	require.InDelta(t, 229.4, got.PaceModuleTotal, 1e-9)
	require.InDelta(t, 225.4, got.BaselineTotal, 1e-9)
}

func TestApplyPace_Disabled(t *testing.T) {
	t.Parallel()

	got := ApplyPace(225.4, 105, 104, false)
	if got.Enabled || got.PaceModuleTotal != 225.4 || got.PaceTotalAdj != 0 {
		t.Fatalf("expected untouched total, got=%+v", got)
	}
}
