package entity

// PricePoint is one trading day in an asset's price history. Open, high and
// low are optional on the wire; the indicator engine can synthesize them
// for candle rendering. SMA fields are attached client-side.
type PricePoint struct {
	Date  string   `json:"date"`
	Close float64  `json:"close"`
	Open  *float64 `json:"open,omitempty"`
	High  *float64 `json:"high,omitempty"`
	Low   *float64 `json:"low,omitempty"`
	SMA20 *float64 `json:"sma20,omitempty"`
	SMA50 *float64 `json:"sma50,omitempty"`
}

// GexPoint is one strike of the aggregated gamma exposure profile,
// computed by the remote service.
type GexPoint struct {
	StrikePrice      float64 `json:"strike"`
	NetGammaExposure float64 `json:"gex"`
}

// AssetDetail is the normalized single-asset analytics payload.
// PriceHistory is chronologically ordered with one entry per trading date.
type AssetDetail struct {
	Ticker               string       `json:"ticker"`
	SpotPrice            float64      `json:"price"`
	CallWall             float64      `json:"call_wall"`
	PutWall              float64      `json:"put_wall"`
	GammaFlipPrice       float64      `json:"gamma_flip"`
	PriceHistory         []PricePoint `json:"history"`
	GammaExposureProfile []GexPoint   `json:"gex_profile"`
}

// HasHistory reports whether enough price history arrived to chart.
func (a AssetDetail) HasHistory() bool {
	return len(a.PriceHistory) > 0
}

// HasOptionsData reports whether a gamma exposure profile arrived.
func (a AssetDetail) HasOptionsData() bool {
	return len(a.GammaExposureProfile) > 0
}
