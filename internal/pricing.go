package internal

import (
	"fmt"
	"math"

	"mbspricer/internal/domain"
)

// WeightedAverageLife returns the average time to principal receipt in
// months, weighting each period by the principal (scheduled plus
// prepaid) paid in it. Interest carries no weight. A schedule with no
// principal flows has a WAL of zero.
func WeightedAverageLife(flows []domain.CashFlowPeriod) float64 {
	var weighted, principal float64
	for _, cf := range flows {
		paid := cf.PrincipalPaid()
		weighted += float64(cf.Period) * paid
		principal += paid
	}
	if principal == 0 {
		return 0
	}
	return weighted / principal
}

// PresentValue discounts each period's total cash flow at the flat
// annual rate, compounded monthly.
func PresentValue(flows []domain.CashFlowPeriod, annualDiscountRate float64) float64 {
	monthlyRate := annualDiscountRate / 12
	var pv float64
	for _, cf := range flows {
		pv += cf.TotalCashFlow / math.Pow(1+monthlyRate, float64(cf.Period))
	}
	return pv
}

// Compute runs the full pricing pipeline: validate the parameters,
// project cash flows under the standard benchmark, and derive WAL,
// price, and summary statistics. A zero-principal or zero-term pool
// yields an empty schedule with zero WAL and zero price.
func Compute(params domain.LoanParameters) (*domain.PricingResult, error) {
	return ComputeWithModel(params, PSAModel{Speed: params.PSASpeed})
}

// ComputeWithModel is Compute with a caller-supplied prepayment model.
func ComputeWithModel(params domain.LoanParameters, model PrepaymentModel) (*domain.PricingResult, error) {
	flows, err := GenerateCashFlowsWithModel(params, model)
	if err != nil {
		return nil, err
	}

	summary, err := SummarizeSchedule(flows)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize schedule: %w", err)
	}

	return &domain.PricingResult{
		WAL:       WeightedAverageLife(flows),
		Price:     PresentValue(flows, params.AnnualDiscountRate),
		CashFlows: flows,
		Summary:   summary,
	}, nil
}
