package main

import (
	"context"
	"os"

	"mbspricer/internal/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "mbspricer",
	Short:        "Price mortgage pools under PSA prepayment assumptions",
	SilenceUsage: true,
}

// newCliContext carries a nop logger so service log lines stay out of
// the command output.
func newCliContext() context.Context {
	return context.WithValue(context.Background(), logger.ContextKey, logger.Nop())
}

func main() {
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(curveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
