package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters marks caller input errors so transport layers
// can map them to 400-style responses instead of internal failures.
var ErrInvalidParameters = errors.New("invalid loan parameters")

// MaxTermMonths caps the projection horizon at 100 years. Validate
// enforces it so a schedule allocation is never sized by raw caller
// input.
const MaxTermMonths = 1200

// LoanParameters describes a mortgage pool in engine units: rates are
// annual decimals, the term is in months, and PSASpeed is a percentage
// of the standard prepayment benchmark (100 = standard).
type LoanParameters struct {
	Principal          float64
	AnnualCouponRate   float64
	TermMonths         int
	PSASpeed           float64
	AnnualDiscountRate float64
}

// Validate rejects out-of-range or non-finite inputs before any
// arithmetic runs. A zero principal or zero term is not an error; it
// produces an empty schedule downstream.
func (p LoanParameters) Validate() error {
	if !isFinite(p.Principal) || p.Principal < 0 {
		return fmt.Errorf("%w: principal must be a non-negative amount, got %v", ErrInvalidParameters, p.Principal)
	}
	if !isFinite(p.AnnualCouponRate) || p.AnnualCouponRate < 0 || p.AnnualCouponRate > 1 {
		return fmt.Errorf("%w: annual coupon rate must be a decimal between 0 and 1, got %v", ErrInvalidParameters, p.AnnualCouponRate)
	}
	if p.TermMonths < 0 {
		return fmt.Errorf("%w: term must be a non-negative number of months, got %d", ErrInvalidParameters, p.TermMonths)
	}
	if p.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: term must be at most %d months, got %d", ErrInvalidParameters, MaxTermMonths, p.TermMonths)
	}
	if !isFinite(p.PSASpeed) || p.PSASpeed < 0 {
		return fmt.Errorf("%w: PSA speed must be a non-negative percentage, got %v", ErrInvalidParameters, p.PSASpeed)
	}
	if !isFinite(p.AnnualDiscountRate) || p.AnnualDiscountRate < 0 || p.AnnualDiscountRate > 1 {
		return fmt.Errorf("%w: annual discount rate must be a decimal between 0 and 1, got %v", ErrInvalidParameters, p.AnnualDiscountRate)
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
