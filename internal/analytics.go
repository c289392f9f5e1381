package internal

import (
	"fmt"

	"mbspricer/internal/domain"

	"github.com/montanaflynn/stats"
)

// SummarizeSchedule aggregates totals and cash-flow distribution stats
// for a projected schedule. An empty schedule summarizes to zeros.
func SummarizeSchedule(flows []domain.CashFlowPeriod) (domain.ScheduleSummary, error) {
	summary := domain.ScheduleSummary{
		Periods: len(flows),
	}
	if len(flows) == 0 {
		return summary, nil
	}

	totals := make([]float64, 0, len(flows))
	for _, cf := range flows {
		summary.TotalInterest += cf.Interest
		summary.TotalScheduledPrincipal += cf.ScheduledPrincipal
		summary.TotalPrepayment += cf.Prepayment
		summary.TotalCashFlow += cf.TotalCashFlow
		totals = append(totals, cf.TotalCashFlow)
	}

	mean, err := stats.Mean(totals)
	if err != nil {
		return domain.ScheduleSummary{}, fmt.Errorf("failed to compute mean cash flow: %w", err)
	}
	peak, err := stats.Max(totals)
	if err != nil {
		return domain.ScheduleSummary{}, fmt.Errorf("failed to compute peak cash flow: %w", err)
	}

	summary.MeanCashFlow = mean
	summary.PeakCashFlow = peak
	for _, cf := range flows {
		if cf.TotalCashFlow == peak {
			summary.PeakPeriod = cf.Period
			break
		}
	}

	return summary, nil
}
