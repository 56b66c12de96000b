package dto

// WatchlistResponse lists the persisted favorite tickers in display order.
type WatchlistResponse struct {
	Tickers []string `json:"tickers"`
}

// ToggleWatchlistResponse reports the membership state after a toggle.
type ToggleWatchlistResponse struct {
	Ticker string `json:"ticker"`
	Added  bool   `json:"added"`
}
