package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mbspricer/internal/domain"
	mock_service "mbspricer/internal/service/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSuggestDiscountRate(t *testing.T) {
	ctx := context.Background()

	t.Run("interpolates the curve at the pool term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockYieldCurveProvider(ctrl)
		provider.EXPECT().
			GetYieldCurveOnDay(gomock.Any(), gomock.Any()).
			Return(&domain.InterestRateMap{
				Rates: map[int]float64{120: 0.04, 240: 0.05},
			}, nil)

		svc := NewDiscountRateService(provider)
		rate, err := svc.SuggestDiscountRate(ctx, 180)
		require.NoError(t, err)
		require.InDelta(t, 0.045, rate, 1e-12)
	})

	t.Run("returns the exact tenor when published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockYieldCurveProvider(ctrl)
		provider.EXPECT().
			GetYieldCurveOnDay(gomock.Any(), gomock.Any()).
			Return(&domain.InterestRateMap{
				Rates: map[int]float64{360: 0.044},
			}, nil)

		svc := NewDiscountRateService(provider)
		rate, err := svc.SuggestDiscountRate(ctx, 360)
		require.NoError(t, err)
		require.Equal(t, 0.044, rate)
	})

	t.Run("propagates provider failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockYieldCurveProvider(ctrl)
		provider.EXPECT().
			GetYieldCurveOnDay(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("upstream down"))

		svc := NewDiscountRateService(provider)
		_, err := svc.SuggestDiscountRate(ctx, 360)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to fetch yield curve")
	})

	t.Run("rejects non-positive terms without calling the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_service.NewMockYieldCurveProvider(ctrl)

		svc := NewDiscountRateService(provider)
		_, err := svc.SuggestDiscountRate(ctx, 0)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrInvalidParameters))
	})
}
