package internal

import (
	"errors"
	"math"
	"testing"

	"mbspricer/internal/domain"

	"github.com/stretchr/testify/require"
)

func standardPool() domain.LoanParameters {
	return domain.LoanParameters{
		Principal:          1_000_000,
		AnnualCouponRate:   0.05,
		TermMonths:         360,
		PSASpeed:           100,
		AnnualDiscountRate: 0.04,
	}
}

func TestGenerateCashFlows(t *testing.T) {
	t.Run("zero speed degenerates to a fixed annuity", func(t *testing.T) {
		params := standardPool()
		params.PSASpeed = 0

		flows, err := GenerateCashFlows(params)
		require.NoError(t, err)
		require.Len(t, flows, 360)

		for _, cf := range flows {
			require.Zero(t, cf.Prepayment)
			require.InDelta(t, 5368.216230121398, cf.TotalCashFlow, 1e-6)
		}
		require.Zero(t, flows[len(flows)-1].RemainingBalance)
	})

	t.Run("standard speed amortizes to zero at term", func(t *testing.T) {
		flows, err := GenerateCashFlows(standardPool())
		require.NoError(t, err)
		require.Len(t, flows, 360)
		require.Zero(t, flows[len(flows)-1].RemainingBalance)

		prev := 1_000_000.0
		var principal float64
		for _, cf := range flows {
			require.GreaterOrEqual(t, cf.ScheduledPrincipal, 0.0)
			require.GreaterOrEqual(t, cf.Prepayment, 0.0)
			require.GreaterOrEqual(t, cf.Interest, 0.0)
			require.LessOrEqual(t, cf.RemainingBalance, prev)
			require.InDelta(t, cf.ScheduledPrincipal+cf.Prepayment+cf.Interest, cf.TotalCashFlow, 1e-9)
			prev = cf.RemainingBalance
			principal += cf.PrincipalPaid()
		}
		require.InDelta(t, 1_000_000, principal, 1e-6)
	})

	t.Run("faster speeds prepay more up front", func(t *testing.T) {
		slow, err := GenerateCashFlows(standardPool())
		require.NoError(t, err)

		params := standardPool()
		params.PSASpeed = 200
		fast, err := GenerateCashFlows(params)
		require.NoError(t, err)

		require.Greater(t, fast[0].Prepayment, slow[0].Prepayment)
		require.Less(t, fast[120].RemainingBalance, slow[120].RemainingBalance)
	})

	t.Run("zero coupon pays straight-line principal", func(t *testing.T) {
		params := domain.LoanParameters{
			Principal:  1_000_000,
			TermMonths: 12,
		}

		flows, err := GenerateCashFlows(params)
		require.NoError(t, err)
		require.Len(t, flows, 12)
		require.Zero(t, flows[0].Interest)
		require.InDelta(t, 83333.33333333333, flows[0].ScheduledPrincipal, 1e-6)
		require.Zero(t, flows[len(flows)-1].RemainingBalance)
	})

	t.Run("extreme speed pays the pool off in month one", func(t *testing.T) {
		params := standardPool()
		params.PSASpeed = 100_000

		flows, err := GenerateCashFlows(params)
		require.NoError(t, err)
		require.Len(t, flows, 1)
		require.InDelta(t, 998798.4504365453, flows[0].Prepayment, 1e-4)
		require.Zero(t, flows[0].RemainingBalance)
	})

	t.Run("zero principal yields an empty schedule", func(t *testing.T) {
		params := standardPool()
		params.Principal = 0

		flows, err := GenerateCashFlows(params)
		require.NoError(t, err)
		require.NotNil(t, flows)
		require.Empty(t, flows)
	})

	t.Run("zero term yields an empty schedule", func(t *testing.T) {
		params := standardPool()
		params.TermMonths = 0

		flows, err := GenerateCashFlows(params)
		require.NoError(t, err)
		require.Empty(t, flows)
	})

	t.Run("rejects invalid parameters before projecting", func(t *testing.T) {
		params := standardPool()
		params.Principal = math.NaN()

		_, err := GenerateCashFlows(params)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrInvalidParameters))
	})

	t.Run("rejects a huge term before allocating the schedule", func(t *testing.T) {
		params := standardPool()
		params.TermMonths = math.MaxInt32

		flows, err := GenerateCashFlows(params)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrInvalidParameters))
		require.Nil(t, flows)
	})

	t.Run("projects a full century pool", func(t *testing.T) {
		params := standardPool()
		params.TermMonths = domain.MaxTermMonths

		flows, err := GenerateCashFlows(params)
		require.NoError(t, err)
		require.LessOrEqual(t, len(flows), domain.MaxTermMonths)
		require.Zero(t, flows[len(flows)-1].RemainingBalance)
	})
}

func TestGenerateCashFlowsWithModel(t *testing.T) {
	t.Run("applies a tabulated model to the net balance", func(t *testing.T) {
		params := domain.LoanParameters{
			Principal:        100_000,
			AnnualCouponRate: 0.06,
			TermMonths:       12,
		}
		model := SMMSchedule{0.01}

		flows, err := GenerateCashFlowsWithModel(params, model)
		require.NoError(t, err)
		require.Len(t, flows, 12)
		require.InDelta(t, 8106.642970708246, flows[0].ScheduledPrincipal, 1e-6)
		require.InDelta(t, 918.9335702929176, flows[0].Prepayment, 1e-6)
		require.InDelta(t, 500, flows[0].Interest, 1e-9)
	})

	t.Run("requires a model", func(t *testing.T) {
		_, err := GenerateCashFlowsWithModel(standardPool(), nil)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrInvalidParameters))
	})
}
