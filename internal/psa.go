package internal

import "math"

// Standard prepayment benchmark: CPR starts at 0.2% in month 1, climbs
// 0.2% per month, and plateaus at 6% from month 30 onward.
const (
	psaMonthlyRampCPR = 0.002
	psaRampMonths     = 30
)

// AnnualCPR returns the annualized conditional prepayment rate at the
// given month (1-based) for a pool prepaying at psaSpeed percent of
// the standard benchmark. The result is clamped to [0, 1].
func AnnualCPR(month int, psaSpeed float64) float64 {
	if month > psaRampMonths {
		month = psaRampMonths
	}
	cpr := psaMonthlyRampCPR * float64(month) * psaSpeed / 100
	if cpr < 0 {
		return 0
	}
	if cpr > 1 {
		return 1
	}
	return cpr
}

// SMMFromCPR converts an annual prepayment rate to the equivalent
// single monthly mortality, the fraction of balance prepaying in one
// month.
func SMMFromCPR(cpr float64) float64 {
	return 1 - math.Pow(1-cpr, 1.0/12.0)
}

// PrepaymentModel yields, per month, the fraction of the remaining
// balance net of scheduled principal that prepays.
type PrepaymentModel interface {
	SMM(month int) float64
}

// PSAModel is the standard benchmark curve at a given speed, where
// Speed is a percentage (100 = standard, 0 = no prepayments).
type PSAModel struct {
	Speed float64
}

func (m PSAModel) SMM(month int) float64 {
	return SMMFromCPR(AnnualCPR(month, m.Speed))
}

// SMMSchedule is a tabulated prepayment model; entry i holds the SMM
// for month i+1. Months past the end of the table reuse the final
// entry.
type SMMSchedule []float64

func (s SMMSchedule) SMM(month int) float64 {
	if len(s) == 0 {
		return 0
	}
	if month < 1 {
		month = 1
	}
	if month > len(s) {
		month = len(s)
	}
	return s[month-1]
}
