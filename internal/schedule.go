package internal

import (
	"fmt"
	"math"

	"mbspricer/internal/domain"
)

// balanceEpsilon clamps residual float dust so a fully amortized pool
// reports an exact zero balance.
const balanceEpsilon = 1e-8

// GenerateCashFlows projects monthly cash flows for the pool under the
// standard prepayment benchmark at params.PSASpeed.
func GenerateCashFlows(params domain.LoanParameters) ([]domain.CashFlowPeriod, error) {
	return GenerateCashFlowsWithModel(params, PSAModel{Speed: params.PSASpeed})
}

// GenerateCashFlowsWithModel projects monthly cash flows using the
// given prepayment model. Each month the scheduled payment is the
// level annuity payment on the current balance over the months still
// remaining, so prepayments shrink later scheduled payments instead of
// shortening the amortization term. The projection stops as soon as
// the balance reaches zero.
func GenerateCashFlowsWithModel(params domain.LoanParameters, model PrepaymentModel) ([]domain.CashFlowPeriod, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, fmt.Errorf("%w: prepayment model is required", domain.ErrInvalidParameters)
	}

	if params.Principal == 0 || params.TermMonths == 0 {
		return []domain.CashFlowPeriod{}, nil
	}

	monthlyRate := params.AnnualCouponRate / 12
	balance := params.Principal
	flows := make([]domain.CashFlowPeriod, 0, params.TermMonths)

	for period := 1; period <= params.TermMonths && balance > 0; period++ {
		remaining := params.TermMonths - period + 1
		payment := annuityPayment(balance, monthlyRate, remaining)
		interest := balance * monthlyRate

		scheduledPrincipal := payment - interest
		if scheduledPrincipal < 0 {
			scheduledPrincipal = 0
		}
		if scheduledPrincipal > balance {
			scheduledPrincipal = balance
		}

		prepayment := (balance - scheduledPrincipal) * model.SMM(period)
		if prepayment < 0 {
			prepayment = 0
		}
		if prepayment > balance-scheduledPrincipal {
			prepayment = balance - scheduledPrincipal
		}

		balance -= scheduledPrincipal + prepayment
		if math.Abs(balance) < balanceEpsilon {
			balance = 0
		}

		flows = append(flows, domain.CashFlowPeriod{
			Period:             period,
			ScheduledPrincipal: scheduledPrincipal,
			Prepayment:         prepayment,
			Interest:           interest,
			TotalCashFlow:      scheduledPrincipal + prepayment + interest,
			RemainingBalance:   balance,
		})
	}

	return flows, nil
}

// annuityPayment is the level payment that amortizes balance over n
// months at the given monthly rate. A zero rate degenerates to equal
// principal installments.
func annuityPayment(balance float64, monthlyRate float64, n int) float64 {
	if n <= 0 {
		return balance
	}
	if monthlyRate == 0 {
		return balance / float64(n)
	}
	return balance * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(n)))
}
