package service

import (
	"context"
	"fmt"
	"time"

	"mbspricer/internal"
	"mbspricer/internal/domain"
	"mbspricer/internal/logger"
)

type ComputePricingInput struct {
	Params domain.LoanParameters
	// PrepaymentExpression, when set, replaces the standard benchmark
	// with a custom CPR curve.
	PrepaymentExpression string
}

type PricingService interface {
	ComputePricing(ctx context.Context, input ComputePricingInput) (*domain.PricingResult, error)
}

type pricingServiceHandler struct {
	ExpressionService PrepaymentExpressionService
}

func NewPricingService(expressionService PrepaymentExpressionService) PricingService {
	return pricingServiceHandler{
		ExpressionService: expressionService,
	}
}

func (h pricingServiceHandler) ComputePricing(ctx context.Context, input ComputePricingInput) (*domain.PricingResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	if err := input.Params.Validate(); err != nil {
		return nil, err
	}

	var model internal.PrepaymentModel = internal.PSAModel{Speed: input.Params.PSASpeed}
	if input.PrepaymentExpression != "" {
		m, err := h.ExpressionService.BuildModel(input.PrepaymentExpression, input.Params.TermMonths)
		if err != nil {
			return nil, fmt.Errorf("failed to build prepayment model: %w", err)
		}
		model = m
	}

	result, err := internal.ComputeWithModel(input.Params, model)
	if err != nil {
		return nil, err
	}

	log.Infof("priced pool over %d periods in %s: wal=%.2f price=%.2f",
		result.Summary.Periods, time.Since(start), result.WAL, result.Price)

	return result, nil
}
