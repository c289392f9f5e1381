package service

import (
	"context"
	"fmt"
	"time"

	"mbspricer/internal/domain"
)

// YieldCurveProvider is the slice of the treasury client the rates
// service depends on.
type YieldCurveProvider interface {
	GetYieldCurveOnDay(ctx context.Context, date time.Time) (*domain.InterestRateMap, error)
}

// DiscountRateService suggests a flat discount rate for a pool by
// interpolating the current treasury curve at the pool's term.
type DiscountRateService interface {
	SuggestDiscountRate(ctx context.Context, termMonths int) (float64, error)
}

type discountRateServiceHandler struct {
	YieldCurveProvider YieldCurveProvider
}

func NewDiscountRateService(provider YieldCurveProvider) DiscountRateService {
	return discountRateServiceHandler{
		YieldCurveProvider: provider,
	}
}

func (h discountRateServiceHandler) SuggestDiscountRate(ctx context.Context, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, fmt.Errorf("%w: term must be positive, got %d months", domain.ErrInvalidParameters, termMonths)
	}

	curve, err := h.YieldCurveProvider.GetYieldCurveOnDay(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to fetch yield curve: %w", err)
	}

	rate, err := curve.GetRate(termMonths)
	if err != nil {
		return 0, fmt.Errorf("failed to interpolate rate at %d months: %w", termMonths, err)
	}

	return rate, nil
}
