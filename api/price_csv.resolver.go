package api

import (
	"fmt"

	"mbspricer/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type scheduleCsvRow struct {
	Period             int     `csv:"period"`
	ScheduledPrincipal float64 `csv:"scheduled_principal"`
	Prepayment         float64 `csv:"prepayment"`
	Interest           float64 `csv:"interest"`
	TotalCashFlow      float64 `csv:"total_cash_flow"`
	RemainingBalance   float64 `csv:"remaining_balance"`
}

// priceCsv runs the same computation as price but streams the schedule
// back as a CSV attachment.
func (m ApiHandler) priceCsv(c *gin.Context) {
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

	rows := make([]scheduleCsvRow, 0, len(result.CashFlows))
	for _, cf := range result.CashFlows {
		rows = append(rows, scheduleCsvRow{
			Period:             cf.Period,
			ScheduledPrincipal: roundCurrency(cf.ScheduledPrincipal),
			Prepayment:         roundCurrency(cf.Prepayment),
			Interest:           roundCurrency(cf.Interest),
			TotalCashFlow:      roundCurrency(cf.TotalCashFlow),
			RemainingBalance:   roundCurrency(cf.RemainingBalance),
		})
	}

	csvString, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal schedule: %w", err), c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.csv"`)
	c.Data(200, "text/csv", []byte(csvString))
}
