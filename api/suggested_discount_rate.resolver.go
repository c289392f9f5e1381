package api

import (
	"fmt"
	"strconv"

	"mbspricer/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type suggestedDiscountRateResponse struct {
	TermMonths          int     `json:"termMonths"`
	DiscountRatePercent float64 `json:"discountRatePercent"`
}

// suggestedDiscountRate interpolates the current treasury curve at the
// requested term, giving form clients a default for the discount-rate
// field.
func (m ApiHandler) suggestedDiscountRate(c *gin.Context) {
	termYearsStr := c.Query("termYears")
	if termYearsStr == "" {
		returnErrorJsonCode(fmt.Errorf("%w: termYears query parameter is required", domain.ErrInvalidParameters), c, 400)
		return
	}

	termYears, err := strconv.ParseFloat(termYearsStr, 64)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("%w: termYears must be numeric", domain.ErrInvalidParameters), c, 400)
		return
	}
	termMonths := int(termYears * 12)

	rate, err := m.DiscountRateService.SuggestDiscountRate(c.Request.Context(), termMonths)
	if err != nil {
		returnPricingError(err, c)
		return
	}

	percent, _ := decimal.NewFromFloat(rate * 100).Round(3).Float64()
	c.JSON(200, suggestedDiscountRateResponse{
		TermMonths:          termMonths,
		DiscountRatePercent: percent,
	})
}
