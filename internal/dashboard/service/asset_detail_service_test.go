package service

import (
	"context"
	"fmt"
	"testing"

	"golang-market-screener/internal/dashboard/repository"
	"golang-market-screener/internal/entity"
	"golang-market-screener/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssetService(repo *fakeScreenerRepo) AssetDetailService {
	return NewAssetDetailService(testConfig(), logger.NewNop(), repo, NewIndicatorService())
}

func TestAssetDetailService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing price fails fast", func(t *testing.T) {
		repo := newFakeScreenerRepo()
		repo.detail = &entity.AssetDetail{Ticker: "AAPL"}

		_, err := newAssetService(repo).Load(ctx, "AAPL")
		assert.ErrorIs(t, err, ErrMissingPrice)
	})

	t.Run("unknown ticker propagates not found", func(t *testing.T) {
		repo := newFakeScreenerRepo()
		repo.detailErr = repository.ErrNotFound

		_, err := newAssetService(repo).Load(ctx, "ZZZZ")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("empty ticker is rejected without a remote call", func(t *testing.T) {
		repo := newFakeScreenerRepo()

		_, err := newAssetService(repo).Load(ctx, "")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Zero(t, repo.detailCalls)
	})

	t.Run("history is ordered and deduplicated, last entry wins", func(t *testing.T) {
		repo := newFakeScreenerRepo()
		repo.detail = &entity.AssetDetail{
			Ticker:    "AAPL",
			SpotPrice: 180,
			PriceHistory: []entity.PricePoint{
				{Date: "2026-01-06", Close: 182},
				{Date: "2026-01-05", Close: 180},
				{Date: "2026-01-06", Close: 183},
			},
		}

		detail, err := newAssetService(repo).Load(ctx, "AAPL")
		require.NoError(t, err)
		require.Len(t, detail.PriceHistory, 2)
		assert.Equal(t, "2026-01-05", detail.PriceHistory[0].Date)
		assert.Equal(t, "2026-01-06", detail.PriceHistory[1].Date)
		assert.Equal(t, 183.0, detail.PriceHistory[1].Close)
	})

	t.Run("candles and moving averages are attached", func(t *testing.T) {
		points := make([]entity.PricePoint, 0, 60)
		for i := 0; i < 60; i++ {
			points = append(points, entity.PricePoint{
				Date:  date(2026, 1, i),
				Close: 100 + float64(i),
			})
		}
		repo := newFakeScreenerRepo()
		repo.detail = &entity.AssetDetail{Ticker: "AAPL", SpotPrice: 159, PriceHistory: points}

		detail, err := newAssetService(repo).Load(ctx, "AAPL")
		require.NoError(t, err)
		require.Len(t, detail.PriceHistory, 60)

		for _, point := range detail.PriceHistory {
			assert.NotNil(t, point.Open)
			assert.NotNil(t, point.High)
			assert.NotNil(t, point.Low)
		}

		assert.Nil(t, detail.PriceHistory[18].SMA20)
		require.NotNil(t, detail.PriceHistory[19].SMA20)
		assert.InDelta(t, 109.5, *detail.PriceHistory[19].SMA20, 1e-9)

		assert.Nil(t, detail.PriceHistory[48].SMA50)
		require.NotNil(t, detail.PriceHistory[49].SMA50)
		assert.InDelta(t, 124.5, *detail.PriceHistory[49].SMA50, 1e-9)
	})

	t.Run("second load is served from cache", func(t *testing.T) {
		repo := newFakeScreenerRepo()
		repo.detail = &entity.AssetDetail{Ticker: "AAPL", SpotPrice: 180}

		svc := newAssetService(repo)
		_, err := svc.Load(ctx, "AAPL")
		require.NoError(t, err)
		_, err = svc.Load(ctx, "AAPL")
		require.NoError(t, err)

		assert.Equal(t, 1, repo.detailCalls)
	})

	t.Run("no history and no options data are valid payloads", func(t *testing.T) {
		repo := newFakeScreenerRepo()
		repo.detail = &entity.AssetDetail{Ticker: "AAPL", SpotPrice: 180}

		detail, err := newAssetService(repo).Load(ctx, "AAPL")
		require.NoError(t, err)
		assert.False(t, detail.HasHistory())
		assert.False(t, detail.HasOptionsData())
	})
}

// date builds a sortable date string; days past a real month's end are
// fine here, only the ordering matters.
func date(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day+1)
}
