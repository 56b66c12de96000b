package service

import (
	"math"

	"golang-market-screener/internal/entity"
)

// candleMargin is the fraction applied above and below the wider of
// open/close when synthesizing missing high/low values.
const candleMargin = 0.003

// IndicatorService computes chart indicators over daily price history.
type IndicatorService interface {
	ComputeMovingAverage(history []entity.PricePoint, period int) []*float64
	SynthesizeOHLC(history []entity.PricePoint) []entity.PricePoint
	ComputeDisplayRange(values []float64, padding float64) (float64, float64)
}

type indicatorService struct{}

// NewIndicatorService creates a new indicator service.
func NewIndicatorService() IndicatorService {
	return &indicatorService{}
}

// ComputeMovingAverage returns the simple moving average of closes,
// aligned to the input. The first period-1 positions are nil since no
// full window exists there yet.
func (s *indicatorService) ComputeMovingAverage(history []entity.PricePoint, period int) []*float64 {
	out := make([]*float64, len(history))
	if period <= 0 || len(history) < period {
		return out
	}

	var windowSum float64
	for i, point := range history {
		windowSum += point.Close
		if i >= period {
			windowSum -= history[i-period].Close
		}
		if i >= period-1 {
			avg := windowSum / float64(period)
			out[i] = &avg
		}
	}
	return out
}

// SynthesizeOHLC fills in missing open/high/low values so close-only
// history still renders as candles. The open carries over the previous
// close, and high/low pad the candle body by a small margin. Entries
// with a non-positive close are dropped; explicit values are kept as-is.
func (s *indicatorService) SynthesizeOHLC(history []entity.PricePoint) []entity.PricePoint {
	out := make([]entity.PricePoint, 0, len(history))
	var prevClose float64
	for _, point := range history {
		if point.Close <= 0 {
			continue
		}

		if point.Open == nil {
			open := point.Close
			if len(out) > 0 {
				open = prevClose
			}
			point.Open = &open
		}
		if point.High == nil {
			high := math.Max(*point.Open, point.Close) * (1 + candleMargin)
			point.High = &high
		}
		if point.Low == nil {
			low := math.Min(*point.Open, point.Close) * (1 - candleMargin)
			point.Low = &low
		}

		out = append(out, point)
		prevClose = point.Close
	}
	return out
}

// ComputeDisplayRange returns padded [min, max] bounds over the finite
// values. With no finite values it falls back to [0, 100] so an axis can
// always be drawn.
func (s *indicatorService) ComputeDisplayRange(values []float64, padding float64) (float64, float64) {
	var (
		minVal, maxVal float64
		found          bool
	)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found || v < minVal {
			minVal = v
		}
		if !found || v > maxVal {
			maxVal = v
		}
		found = true
	}
	if !found {
		return 0, 100
	}
	return minVal * (1 - padding), maxVal * (1 + padding)
}
