package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnualCPR(t *testing.T) {
	t.Run("ramps from 0.2% to 6% over 30 months at standard speed", func(t *testing.T) {
		require.InDelta(t, 0.002, AnnualCPR(1, 100), 1e-12)
		require.InDelta(t, 0.03, AnnualCPR(15, 100), 1e-12)
		require.InDelta(t, 0.06, AnnualCPR(30, 100), 1e-12)
	})

	t.Run("plateaus after month 30", func(t *testing.T) {
		require.InDelta(t, 0.06, AnnualCPR(31, 100), 1e-12)
		require.InDelta(t, 0.06, AnnualCPR(360, 100), 1e-12)
	})

	t.Run("scales linearly with speed", func(t *testing.T) {
		require.InDelta(t, 0.004, AnnualCPR(1, 200), 1e-12)
		require.InDelta(t, 0.12, AnnualCPR(40, 200), 1e-12)
		require.InDelta(t, 0.001, AnnualCPR(1, 50), 1e-12)
	})

	t.Run("zero speed never prepays", func(t *testing.T) {
		for _, month := range []int{1, 30, 120, 360} {
			require.Zero(t, AnnualCPR(month, 0))
		}
	})

	t.Run("caps at 100% CPR", func(t *testing.T) {
		require.Equal(t, 1.0, AnnualCPR(30, 5000))
	})
}

func TestSMMFromCPR(t *testing.T) {
	require.Zero(t, SMMFromCPR(0))
	require.Equal(t, 1.0, SMMFromCPR(1))
	require.InDelta(t, 0.005143012831822946, SMMFromCPR(0.06), 1e-12)
	require.InDelta(t, 0.010596241035318976, SMMFromCPR(0.12), 1e-12)
}

func TestPSAModel(t *testing.T) {
	model := PSAModel{Speed: 100}
	require.InDelta(t, 0.00016681963994558124, model.SMM(1), 1e-12)
	require.InDelta(t, 0.005143012831822946, model.SMM(30), 1e-12)
	require.InDelta(t, 0.005143012831822946, model.SMM(200), 1e-12)
}

func TestSMMSchedule(t *testing.T) {
	t.Run("empty schedule never prepays", func(t *testing.T) {
		require.Zero(t, SMMSchedule{}.SMM(1))
	})

	t.Run("indexes months from one", func(t *testing.T) {
		s := SMMSchedule{0.01, 0.02, 0.03}
		require.Equal(t, 0.01, s.SMM(1))
		require.Equal(t, 0.03, s.SMM(3))
	})

	t.Run("months past the table reuse the final entry", func(t *testing.T) {
		s := SMMSchedule{0.01, 0.02}
		require.Equal(t, 0.02, s.SMM(10))
	})
}
