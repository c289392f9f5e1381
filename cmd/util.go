package cmd

import (
	"fmt"
	"log"
	"mbspricer/api"
	"mbspricer/internal"
	"mbspricer/internal/service"
	treasury_client "mbspricer/pkg/treasury"

	"github.com/joho/godotenv"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	config, err := internal.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cache treasury_client.Cache = treasury_client.NewMemoryCache()
	if config.RedisAddr != "" {
		cache = treasury_client.NewRedisCache(config.RedisAddr)
	}
	treasuryClient := treasury_client.NewClient(config.TreasuryBaseUrl, cache)

	expressionService := service.NewPrepaymentExpressionService()
	pricingService := service.NewPricingService(expressionService)
	discountRateService := service.NewDiscountRateService(treasuryClient)

	apiHandler := &api.ApiHandler{
		PricingService:      pricingService,
		DiscountRateService: discountRateService,
	}

	return apiHandler, nil
}
