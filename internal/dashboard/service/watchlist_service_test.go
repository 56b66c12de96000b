package service

import (
	"context"
	"errors"
	"testing"

	"golang-market-screener/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWatchlistRepo struct {
	stored  []string
	saves   [][]string
	loadErr error
	saveErr error
}

func (f *fakeWatchlistRepo) Load(ctx context.Context) ([]string, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]string{}, f.stored...), nil
}

func (f *fakeWatchlistRepo) Save(ctx context.Context, tickers []string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = append([]string{}, tickers...)
	f.saves = append(f.saves, append([]string{}, tickers...))
	return nil
}

func TestWatchlistService_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle adds then removes", func(t *testing.T) {
		repo := &fakeWatchlistRepo{}
		svc, err := NewWatchlistService(ctx, repo, logger.NewNop())
		require.NoError(t, err)

		added, err := svc.Toggle(ctx, "AAPL")
		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, svc.Contains("AAPL"))

		added, err = svc.Toggle(ctx, "AAPL")
		require.NoError(t, err)
		assert.False(t, added)
		assert.False(t, svc.Contains("AAPL"))

		// a toggle pair lands back on the starting state
		assert.Empty(t, svc.List())
	})

	t.Run("every mutation is persisted once", func(t *testing.T) {
		repo := &fakeWatchlistRepo{}
		svc, err := NewWatchlistService(ctx, repo, logger.NewNop())
		require.NoError(t, err)

		_, err = svc.Toggle(ctx, "AAPL")
		require.NoError(t, err)
		_, err = svc.Toggle(ctx, "NVDA")
		require.NoError(t, err)
		_, err = svc.Toggle(ctx, "AAPL")
		require.NoError(t, err)

		require.Len(t, repo.saves, 3)
		assert.Equal(t, []string{"AAPL"}, repo.saves[0])
		assert.Equal(t, []string{"AAPL", "NVDA"}, repo.saves[1])
		assert.Equal(t, []string{"NVDA"}, repo.saves[2])
	})

	t.Run("insertion order survives removals", func(t *testing.T) {
		repo := &fakeWatchlistRepo{stored: []string{"AAPL", "NVDA", "XOM"}}
		svc, err := NewWatchlistService(ctx, repo, logger.NewNop())
		require.NoError(t, err)

		_, err = svc.Toggle(ctx, "NVDA")
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL", "XOM"}, svc.List())
	})

	t.Run("failed persist keeps the previous state", func(t *testing.T) {
		repo := &fakeWatchlistRepo{stored: []string{"AAPL"}}
		svc, err := NewWatchlistService(ctx, repo, logger.NewNop())
		require.NoError(t, err)

		repo.saveErr = errors.New("kv unavailable")
		_, err = svc.Toggle(ctx, "NVDA")
		require.Error(t, err)
		assert.Equal(t, []string{"AAPL"}, svc.List())
		assert.False(t, svc.Contains("NVDA"))
	})

	t.Run("blank ticker is rejected", func(t *testing.T) {
		repo := &fakeWatchlistRepo{}
		svc, err := NewWatchlistService(ctx, repo, logger.NewNop())
		require.NoError(t, err)

		_, err = svc.Toggle(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyTicker)
	})
}
