package main

import (
	"fmt"
	"sort"
	"time"

	"mbspricer/internal"
	treasury_client "mbspricer/pkg/treasury"

	"github.com/spf13/cobra"
)

var curveFlags struct {
	date      string
	termYears float64
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Fetch the treasury yield curve for a given day",
	RunE:  runCurve,
}

func init() {
	curveCmd.Flags().StringVar(&curveFlags.date, "date", "", "curve date as YYYY-MM-DD, defaults to today")
	curveCmd.Flags().Float64Var(&curveFlags.termYears, "term-years", 0, "also interpolate the curve at this term")
}

func runCurve(cmd *cobra.Command, args []string) error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}

	var cache treasury_client.Cache = treasury_client.NewMemoryCache()
	if config.RedisAddr != "" {
		cache = treasury_client.NewRedisCache(config.RedisAddr)
	}
	client := treasury_client.NewClient(config.TreasuryBaseUrl, cache)

	date := time.Now().UTC()
	if curveFlags.date != "" {
		date, err = time.Parse("2006-01-02", curveFlags.date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	curve, err := client.GetYieldCurveOnDay(newCliContext(), date)
	if err != nil {
		return err
	}

	months := make([]int, 0, len(curve.Rates))
	for m := range curve.Rates {
		months = append(months, m)
	}
	sort.Ints(months)

	fmt.Printf("treasury yield curve on %s\n", date.Format("2006-01-02"))
	for _, m := range months {
		fmt.Printf("%4d months  %6.3f%%\n", m, curve.Rates[m]*100)
	}

	if curveFlags.termYears > 0 {
		termMonths := int(curveFlags.termYears * 12)
		rate, err := curve.GetRate(termMonths)
		if err != nil {
			return err
		}
		fmt.Printf("interpolated at %d months: %.3f%%\n", termMonths, rate*100)
	}

	return nil
}
