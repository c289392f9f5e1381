package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoanParametersValidate(t *testing.T) {
	valid := LoanParameters{
		Principal:          1_000_000,
		AnnualCouponRate:   0.05,
		TermMonths:         360,
		PSASpeed:           100,
		AnnualDiscountRate: 0.04,
	}

	t.Run("valid parameters pass", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("zero principal and zero term pass", func(t *testing.T) {
		p := valid
		p.Principal = 0
		p.TermMonths = 0
		require.NoError(t, p.Validate())
	})

	t.Run("term at the cap passes", func(t *testing.T) {
		p := valid
		p.TermMonths = MaxTermMonths
		require.NoError(t, p.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*LoanParameters)
	}{
		{"negative principal", func(p *LoanParameters) { p.Principal = -1 }},
		{"NaN principal", func(p *LoanParameters) { p.Principal = math.NaN() }},
		{"infinite principal", func(p *LoanParameters) { p.Principal = math.Inf(1) }},
		{"negative coupon", func(p *LoanParameters) { p.AnnualCouponRate = -0.01 }},
		{"coupon above one", func(p *LoanParameters) { p.AnnualCouponRate = 1.5 }},
		{"negative term", func(p *LoanParameters) { p.TermMonths = -12 }},
		{"term beyond the cap", func(p *LoanParameters) { p.TermMonths = MaxTermMonths + 1 }},
		{"absurdly large term", func(p *LoanParameters) { p.TermMonths = math.MaxInt32 }},
		{"negative psa speed", func(p *LoanParameters) { p.PSASpeed = -100 }},
		{"NaN psa speed", func(p *LoanParameters) { p.PSASpeed = math.NaN() }},
		{"negative discount rate", func(p *LoanParameters) { p.AnnualDiscountRate = -0.04 }},
		{"discount rate above one", func(p *LoanParameters) { p.AnnualDiscountRate = 4 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidParameters))
		})
	}
}
