package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang-market-screener/internal/dashboard/repository"
	"golang-market-screener/pkg/logger"
)

// ErrEmptyTicker is returned when a watchlist operation receives a blank
// ticker symbol.
var ErrEmptyTicker = errors.New("ticker must not be empty")

// WatchlistService maintains the favorite ticker list. Membership is
// kept in memory in insertion order and every mutation is written
// through to the repository before it returns.
type WatchlistService interface {
	Toggle(ctx context.Context, ticker string) (bool, error)
	Contains(ticker string) bool
	List() []string
}

type watchlistService struct {
	repo repository.WatchlistRepository
	log  *logger.Logger

	mu      sync.Mutex
	tickers []string
}

// NewWatchlistService creates the watchlist service, loading the
// persisted list.
func NewWatchlistService(ctx context.Context, repo repository.WatchlistRepository, log *logger.Logger) (WatchlistService, error) {
	tickers, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &watchlistService{repo: repo, log: log, tickers: tickers}, nil
}

// Toggle adds the ticker when absent and removes it when present. The
// new membership state is returned only after the change is persisted.
func (s *watchlistService) Toggle(ctx context.Context, ticker string) (bool, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return false, ErrEmptyTicker
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.tickers {
		if t == ticker {
			idx = i
			break
		}
	}

	var next []string
	added := idx < 0
	if added {
		next = append(append([]string{}, s.tickers...), ticker)
	} else {
		next = append(append([]string{}, s.tickers[:idx]...), s.tickers[idx+1:]...)
	}

	if err := s.repo.Save(ctx, next); err != nil {
		s.log.ErrorContext(ctx, "Failed to persist watchlist", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return idx >= 0, err
	}

	s.tickers = next
	return added, nil
}

// Contains reports whether the ticker is on the watchlist.
func (s *watchlistService) Contains(ticker string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickers {
		if t == ticker {
			return true
		}
	}
	return false
}

// List returns the watchlist in insertion order.
func (s *watchlistService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.tickers))
	copy(out, s.tickers)
	return out
}
