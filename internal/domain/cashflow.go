package domain

// CashFlowPeriod holds one month of projected pool cash flows. Period
// is 1-based and RemainingBalance is measured after the month's
// payments have been applied.
type CashFlowPeriod struct {
	Period             int
	ScheduledPrincipal float64
	Prepayment         float64
	Interest           float64
	TotalCashFlow      float64
	RemainingBalance   float64
}

// PrincipalPaid returns scheduled plus prepaid principal for the period.
func (c CashFlowPeriod) PrincipalPaid() float64 {
	return c.ScheduledPrincipal + c.Prepayment
}

// ScheduleSummary aggregates a projected schedule for display.
type ScheduleSummary struct {
	Periods                 int
	TotalInterest           float64
	TotalScheduledPrincipal float64
	TotalPrepayment         float64
	TotalCashFlow           float64
	MeanCashFlow            float64
	PeakCashFlow            float64
	PeakPeriod              int
}

// PricingResult is the output of a full pricing run. WAL is expressed
// in months and Price in the currency units of the principal.
type PricingResult struct {
	WAL       float64
	Price     float64
	CashFlows []CashFlowPeriod
	Summary   ScheduleSummary
}
