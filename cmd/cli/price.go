package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"mbspricer/internal"
	"mbspricer/internal/domain"
	"mbspricer/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var priceFlags struct {
	principal       float64
	couponPercent   float64
	termYears       float64
	psaSpeeds       []float64
	discountPercent float64
	expression      string
	csvPath         string
	jsonOut         bool
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Project pool cash flows and compute WAL and price",
	RunE:  runPrice,
}

func init() {
	flags := priceCmd.Flags()
	flags.Float64Var(&priceFlags.principal, "principal", 1_000_000, "original pool balance in dollars")
	flags.Float64Var(&priceFlags.couponPercent, "coupon", 5.0, "annual coupon rate as a percent")
	flags.Float64Var(&priceFlags.termYears, "term-years", 30, "pool term in years")
	flags.Float64SliceVar(&priceFlags.psaSpeeds, "psa", []float64{100}, "PSA speed, repeat for a comparison table")
	flags.Float64Var(&priceFlags.discountPercent, "discount", 4.0, "annual discount rate as a percent")
	flags.StringVar(&priceFlags.expression, "expression", "", "CPR expression over month, overrides --psa")
	flags.StringVar(&priceFlags.csvPath, "csv", "", "write the cash-flow schedule to this file")
	flags.BoolVar(&priceFlags.jsonOut, "json", false, "print the full pricing result as json")
}

type scenarioResult struct {
	Scenario string                `json:"scenario"`
	Result   *domain.PricingResult `json:"result"`
}

type scheduleCsvRow struct {
	Period             int     `csv:"period"`
	ScheduledPrincipal float64 `csv:"scheduled_principal"`
	Prepayment         float64 `csv:"prepayment"`
	Interest           float64 `csv:"interest"`
	TotalCashFlow      float64 `csv:"total_cash_flow"`
	RemainingBalance   float64 `csv:"remaining_balance"`
}

func runPrice(cmd *cobra.Command, args []string) error {
	if priceFlags.expression != "" && len(priceFlags.psaSpeeds) > 1 {
		return fmt.Errorf("--expression cannot be combined with a --psa comparison")
	}
	if priceFlags.csvPath != "" && len(priceFlags.psaSpeeds) > 1 {
		return fmt.Errorf("--csv only supports a single scenario")
	}
	if math.IsNaN(priceFlags.termYears) || math.IsInf(priceFlags.termYears, 0) || priceFlags.termYears < 0 {
		return fmt.Errorf("--term-years must be a non-negative number")
	}

	pricingService := service.NewPricingService(service.NewPrepaymentExpressionService())
	ctx := newCliContext()

	scenarios := []scenarioResult{}
	for _, speed := range priceFlags.psaSpeeds {
		input := service.ComputePricingInput{
			Params: domain.LoanParameters{
				Principal:          priceFlags.principal,
				AnnualCouponRate:   priceFlags.couponPercent / 100,
				TermMonths:         int(priceFlags.termYears * 12),
				PSASpeed:           speed,
				AnnualDiscountRate: priceFlags.discountPercent / 100,
			},
			PrepaymentExpression: priceFlags.expression,
		}
		label := fmt.Sprintf("PSA %.0f", speed)
		if priceFlags.expression != "" {
			label = priceFlags.expression
		}

		result, err := pricingService.ComputePricing(ctx, input)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, scenarioResult{Scenario: label, Result: result})
	}

	if priceFlags.jsonOut {
		internal.Pprint(scenarios)
		return nil
	}

	if priceFlags.csvPath != "" {
		if err := writeScheduleCsv(priceFlags.csvPath, scenarios[0].Result.CashFlows); err != nil {
			return err
		}
		if priceFlags.csvPath == "-" {
			return nil
		}
		fmt.Printf("wrote %d periods to %s\n", len(scenarios[0].Result.CashFlows), priceFlags.csvPath)
	}

	if len(scenarios) == 1 {
		result := scenarios[0].Result
		fmt.Printf("WAL: %.2f months\n", result.WAL)
		fmt.Printf("MBS Price: $%s\n", decimal.NewFromFloat(result.Price).StringFixed(2))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tWAL (MONTHS)\tPRICE ($)")
	for _, s := range scenarios {
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", s.Scenario, s.Result.WAL, decimal.NewFromFloat(s.Result.Price).StringFixed(2))
	}
	return w.Flush()
}

func writeScheduleCsv(path string, flows []domain.CashFlowPeriod) error {
	rows := make([]scheduleCsvRow, 0, len(flows))
	for _, flow := range flows {
		rows = append(rows, scheduleCsvRow{
			Period:             flow.Period,
			ScheduledPrincipal: flow.ScheduledPrincipal,
			Prepayment:         flow.Prepayment,
			Interest:           flow.Interest,
			TotalCashFlow:      flow.TotalCashFlow,
			RemainingBalance:   flow.RemainingBalance,
		})
	}

	if path == "-" {
		return gocsv.Marshal(&rows, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}
