package api

import (
	"fmt"
	"math"

	"mbspricer/internal/domain"
	"mbspricer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// priceRequest carries form-shaped inputs: rates as percentages and
// the term in years, converted here to engine units.
type priceRequest struct {
	Principal           *float64 `json:"principal"`
	CouponRatePercent   *float64 `json:"couponRatePercent"`
	TermYears           *float64 `json:"termYears"`
	PSASpeed            *float64 `json:"psaSpeed"`
	DiscountRatePercent *float64 `json:"discountRatePercent"`
	CPRExpression       string   `json:"cprExpression"`
}

func (r priceRequest) toLoanParameters() (*domain.LoanParameters, error) {
	if r.Principal == nil || r.CouponRatePercent == nil || r.TermYears == nil || r.PSASpeed == nil || r.DiscountRatePercent == nil {
		return nil, fmt.Errorf("%w: principal, couponRatePercent, termYears, psaSpeed and discountRatePercent are required", domain.ErrInvalidParameters)
	}
	if math.IsNaN(*r.TermYears) || math.IsInf(*r.TermYears, 0) || *r.TermYears < 0 {
		return nil, fmt.Errorf("%w: termYears must be a non-negative number, got %v", domain.ErrInvalidParameters, *r.TermYears)
	}

	return &domain.LoanParameters{
		Principal:          *r.Principal,
		AnnualCouponRate:   *r.CouponRatePercent / 100,
		TermMonths:         int(*r.TermYears * 12),
		PSASpeed:           *r.PSASpeed,
		AnnualDiscountRate: *r.DiscountRatePercent / 100,
	}, nil
}

type cashFlowPeriodJson struct {
	Period             int     `json:"period"`
	ScheduledPrincipal float64 `json:"scheduledPrincipal"`
	Prepayment         float64 `json:"prepayment"`
	Interest           float64 `json:"interest"`
	TotalCashFlow      float64 `json:"totalCashFlow"`
	RemainingBalance   float64 `json:"remainingBalance"`
}

type scheduleSummaryJson struct {
	Periods                 int     `json:"periods"`
	TotalInterest           float64 `json:"totalInterest"`
	TotalScheduledPrincipal float64 `json:"totalScheduledPrincipal"`
	TotalPrepayment         float64 `json:"totalPrepayment"`
	TotalCashFlow           float64 `json:"totalCashFlow"`
	MeanCashFlow            float64 `json:"meanCashFlow"`
	PeakCashFlow            float64 `json:"peakCashFlow"`
	PeakPeriod              int     `json:"peakPeriod"`
}

type priceResponse struct {
	WALMonths      float64              `json:"walMonths"`
	Price          float64              `json:"price"`
	WALFormatted   string               `json:"walFormatted"`
	PriceFormatted string               `json:"priceFormatted"`
	Summary        scheduleSummaryJson  `json:"summary"`
	CashFlows      []cashFlowPeriodJson `json:"cashFlows"`
}

// roundCurrency rounds to cents for display payloads.
func roundCurrency(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

func newPriceResponse(result *domain.PricingResult) priceResponse {
	cashFlows := make([]cashFlowPeriodJson, 0, len(result.CashFlows))
	for _, cf := range result.CashFlows {
		cashFlows = append(cashFlows, cashFlowPeriodJson{
			Period:             cf.Period,
			ScheduledPrincipal: roundCurrency(cf.ScheduledPrincipal),
			Prepayment:         roundCurrency(cf.Prepayment),
			Interest:           roundCurrency(cf.Interest),
			TotalCashFlow:      roundCurrency(cf.TotalCashFlow),
			RemainingBalance:   roundCurrency(cf.RemainingBalance),
		})
	}

	return priceResponse{
		WALMonths:      result.WAL,
		Price:          roundCurrency(result.Price),
		WALFormatted:   fmt.Sprintf("WAL: %.2f months", result.WAL),
		PriceFormatted: fmt.Sprintf("MBS Price: $%s", decimal.NewFromFloat(result.Price).StringFixed(2)),
		Summary: scheduleSummaryJson{
			Periods:                 result.Summary.Periods,
			TotalInterest:           roundCurrency(result.Summary.TotalInterest),
			TotalScheduledPrincipal: roundCurrency(result.Summary.TotalScheduledPrincipal),
			TotalPrepayment:         roundCurrency(result.Summary.TotalPrepayment),
			TotalCashFlow:           roundCurrency(result.Summary.TotalCashFlow),
			MeanCashFlow:            roundCurrency(result.Summary.MeanCashFlow),
			PeakCashFlow:            roundCurrency(result.Summary.PeakCashFlow),
			PeakPeriod:              result.Summary.PeakPeriod,
		},
		CashFlows: cashFlows,
	}
}

func (m ApiHandler) price(c *gin.Context) {
	var requestBody priceRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	params, err := requestBody.toLoanParameters()
	if err != nil {
		returnPricingError(err, c)
		return
	}

	result, err := m.PricingService.ComputePricing(c.Request.Context(), service.ComputePricingInput{
		Params:               *params,
		PrepaymentExpression: requestBody.CPRExpression,
	})
	if err != nil {
		returnPricingError(err, c)
		return
	}

	c.JSON(200, newPriceResponse(result))
}
