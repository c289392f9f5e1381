package service

import (
	"fmt"
	"math"

	"mbspricer/internal"
	"mbspricer/internal/domain"

	"github.com/maja42/goval"
)

// PrepaymentExpressionService builds tabulated prepayment models from
// caller-supplied CPR expressions. The expression is evaluated once
// per month of the term with `month` (1-based) in scope and must
// produce an annual CPR in [0, 1].
type PrepaymentExpressionService interface {
	BuildModel(expression string, termMonths int) (internal.PrepaymentModel, error)
}

type prepaymentExpressionServiceHandler struct{}

func NewPrepaymentExpressionService() PrepaymentExpressionService {
	return prepaymentExpressionServiceHandler{}
}

func constructFunctionMap(month int) map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		// psa(speed) - annual CPR under the standard benchmark at the
		// month being evaluated
		"psa": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("psa needs 1 arg, got %d", len(args))
			}
			speed, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			return internal.AnnualCPR(month, speed), nil
		},
		"min": func(args ...interface{}) (interface{}, error) {
			if len(args) < 2 {
				return 0, fmt.Errorf("min needs 2 args, got %d", len(args))
			}
			a, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			b, err := toFloat(args[1])
			if err != nil {
				return 0, err
			}
			return math.Min(a, b), nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			if len(args) < 2 {
				return 0, fmt.Errorf("max needs 2 args, got %d", len(args))
			}
			a, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			b, err := toFloat(args[1])
			if err != nil {
				return 0, err
			}
			return math.Max(a, b), nil
		},
	}
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func (h prepaymentExpressionServiceHandler) BuildModel(expression string, termMonths int) (internal.PrepaymentModel, error) {
	if expression == "" {
		return nil, fmt.Errorf("%w: prepayment expression is empty", domain.ErrInvalidParameters)
	}
	if termMonths < 0 {
		return nil, fmt.Errorf("%w: term must be non-negative, got %d", domain.ErrInvalidParameters, termMonths)
	}

	eval := goval.NewEvaluator()
	schedule := make(internal.SMMSchedule, termMonths)
	for month := 1; month <= termMonths; month++ {
		variables := map[string]interface{}{
			"month": month,
		}

		result, err := eval.Evaluate(expression, variables, constructFunctionMap(month))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to evaluate prepayment expression: %v", domain.ErrInvalidParameters, err)
		}

		cpr, err := toFloat(result)
		if err != nil {
			return nil, fmt.Errorf("%w: prepayment expression must produce a number: %v", domain.ErrInvalidParameters, err)
		}
		if math.IsNaN(cpr) || math.IsInf(cpr, 0) {
			return nil, fmt.Errorf("%w: prepayment expression produced a non-finite CPR in month %d", domain.ErrInvalidParameters, month)
		}
		if cpr < 0 || cpr > 1 {
			return nil, fmt.Errorf("%w: prepayment expression produced CPR %v in month %d, outside [0, 1]", domain.ErrInvalidParameters, cpr, month)
		}

		schedule[month-1] = internal.SMMFromCPR(cpr)
	}

	return schedule, nil
}
