package service

import (
	"context"
	"errors"
	"sort"

	"golang-market-screener/internal/dashboard/config"
	"golang-market-screener/internal/dashboard/repository"
	"golang-market-screener/internal/entity"
	"golang-market-screener/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
)

const (
	smaShortPeriod = 20
	smaLongPeriod  = 50
)

// ErrMissingPrice is returned when the remote payload carries no usable
// spot price. Nothing downstream can render without one.
var ErrMissingPrice = errors.New("asset payload is missing a spot price")

// AssetDetailService loads and normalizes the detail payload for a
// single ticker.
type AssetDetailService interface {
	Load(ctx context.Context, ticker string) (*entity.AssetDetail, error)
}

type assetDetailService struct {
	cfg          *config.Config
	log          *logger.Logger
	screenerRepo repository.ScreenerAPIRepository
	indicator    IndicatorService
	cache        *gocache.Cache
}

// NewAssetDetailService creates the asset detail loader with a TTL cache
// in front of the remote service.
func NewAssetDetailService(cfg *config.Config, log *logger.Logger, screenerRepo repository.ScreenerAPIRepository, indicator IndicatorService) AssetDetailService {
	return &assetDetailService{
		cfg:          cfg,
		log:          log,
		screenerRepo: screenerRepo,
		indicator:    indicator,
		cache:        gocache.New(cfg.AssetCache.TTL, cfg.AssetCache.CleanupInterval),
	}
}

// Load returns the normalized detail payload for the ticker, serving
// from cache when fresh. History is deduplicated, ordered, completed to
// OHLC and annotated with moving averages before it is cached.
func (s *assetDetailService) Load(ctx context.Context, ticker string) (*entity.AssetDetail, error) {
	if ticker == "" {
		return nil, repository.ErrNotFound
	}

	if cached, found := s.cache.Get(ticker); found {
		return cached.(*entity.AssetDetail), nil
	}

	detail, err := s.screenerRepo.GetAssetDetail(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if detail.SpotPrice <= 0 {
		return nil, ErrMissingPrice
	}

	detail.PriceHistory = s.normalizeHistory(detail.PriceHistory)

	s.cache.SetDefault(ticker, detail)
	s.log.DebugContext(ctx, "Loaded asset detail",
		logger.StringField("ticker", ticker),
		logger.IntField("history_points", len(detail.PriceHistory)),
		logger.IntField("gex_points", len(detail.GammaExposureProfile)))

	return detail, nil
}

// normalizeHistory orders the series by date, keeps the last entry for
// duplicate dates, synthesizes missing candle values and attaches the
// moving averages.
func (s *assetDetailService) normalizeHistory(history []entity.PricePoint) []entity.PricePoint {
	if len(history) == 0 {
		return history
	}

	byDate := make(map[string]entity.PricePoint, len(history))
	dates := make([]string, 0, len(history))
	for _, point := range history {
		if _, seen := byDate[point.Date]; !seen {
			dates = append(dates, point.Date)
		}
		byDate[point.Date] = point
	}
	sort.Strings(dates)

	ordered := make([]entity.PricePoint, 0, len(dates))
	for _, date := range dates {
		ordered = append(ordered, byDate[date])
	}

	ordered = s.indicator.SynthesizeOHLC(ordered)

	sma20 := s.indicator.ComputeMovingAverage(ordered, smaShortPeriod)
	sma50 := s.indicator.ComputeMovingAverage(ordered, smaLongPeriod)
	for i := range ordered {
		ordered[i].SMA20 = sma20[i]
		ordered[i].SMA50 = sma50[i]
	}
	return ordered
}
