package config

import (
	"time"

	"golang-market-screener/pkg/config"
)

// Screener holds the configuration for the remote scan/analytics service.
type Screener struct {
	BaseURL             string        `mapstructure:"base_url"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
}

// Poller holds the scan status polling configuration.
type Poller struct {
	Interval        time.Duration `mapstructure:"interval"`
	InitialProgress int           `mapstructure:"initial_progress"`
}

// AssetCache holds the asset detail cache configuration.
type AssetCache struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// Rescan holds the scheduled rescan configuration. An empty cron
// expression disables scheduled rescans.
type Rescan struct {
	CronExpression  string `mapstructure:"cron_expression"`
	Sector          string `mapstructure:"sector"`
	UniverseSize    int    `mapstructure:"num_tickers"`
	MaxDaysToExpiry int    `mapstructure:"max_dte"`
	LookbackWindow  int    `mapstructure:"lookback"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Screener   Screener        `mapstructure:"screener"`
	Poller     Poller          `mapstructure:"poller"`
	AssetCache AssetCache      `mapstructure:"asset_cache"`
	Rescan     Rescan          `mapstructure:"rescan"`
	Telegram   Telegram        `mapstructure:"telegram"`
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Poller.Interval <= 0 {
		cfg.Poller.Interval = 2 * time.Second
	}
	if cfg.Poller.InitialProgress <= 0 {
		cfg.Poller.InitialProgress = 5
	}
	return &cfg, nil
}
