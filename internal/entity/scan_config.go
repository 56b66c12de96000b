package entity

import "fmt"

// SectorAll disables sector filtering.
const SectorAll = "All"

// Sectors lists the GICS sectors the scan universe can be narrowed to.
var Sectors = []string{
	"Communication Services",
	"Consumer Discretionary",
	"Consumer Staples",
	"Energy",
	"Financials",
	"Health Care",
	"Industrials",
	"Information Technology",
	"Materials",
	"Real Estate",
	"Utilities",
}

// Scan configuration bounds, mirrored by the filter UI.
const (
	MinMaxDaysToExpiry = 7
	MaxMaxDaysToExpiry = 180
	MinLookbackWindow  = 10
	MaxLookbackWindow  = 90
)

// ScanConfig describes one market scan request. It is immutable once
// submitted; every submission creates a new job.
type ScanConfig struct {
	Sector          string `json:"sector"`
	UniverseSize    int    `json:"num_tickers"`
	MaxDaysToExpiry int    `json:"max_dte"`
	LookbackWindow  int    `json:"lookback"`
}

// Validate checks the configuration ranges before submission.
func (c ScanConfig) Validate() error {
	if !validSector(c.Sector) {
		return fmt.Errorf("unknown sector %q", c.Sector)
	}
	if c.UniverseSize < 1 {
		return fmt.Errorf("num_tickers must be at least 1, got %d", c.UniverseSize)
	}
	if c.MaxDaysToExpiry < MinMaxDaysToExpiry || c.MaxDaysToExpiry > MaxMaxDaysToExpiry {
		return fmt.Errorf("max_dte must be between %d and %d, got %d", MinMaxDaysToExpiry, MaxMaxDaysToExpiry, c.MaxDaysToExpiry)
	}
	if c.LookbackWindow < MinLookbackWindow || c.LookbackWindow > MaxLookbackWindow {
		return fmt.Errorf("lookback must be between %d and %d, got %d", MinLookbackWindow, MaxLookbackWindow, c.LookbackWindow)
	}
	return nil
}

func validSector(sector string) bool {
	if sector == SectorAll {
		return true
	}
	for _, s := range Sectors {
		if s == sector {
			return true
		}
	}
	return false
}
