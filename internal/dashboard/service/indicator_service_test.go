package service

import (
	"math"
	"testing"

	"golang-market-screener/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func history(closes ...float64) []entity.PricePoint {
	out := make([]entity.PricePoint, len(closes))
	for i, c := range closes {
		out[i] = entity.PricePoint{Date: "2026-01-0" + string(rune('1'+i)), Close: c}
	}
	return out
}

func TestIndicatorService_ComputeMovingAverage(t *testing.T) {
	svc := NewIndicatorService()

	t.Run("window shorter than series", func(t *testing.T) {
		got := svc.ComputeMovingAverage(history(1, 2, 3, 4, 5), 3)
		require.Len(t, got, 5)
		assert.Nil(t, got[0])
		assert.Nil(t, got[1])
		require.NotNil(t, got[2])
		assert.InDelta(t, 2.0, *got[2], 1e-9)
		require.NotNil(t, got[3])
		assert.InDelta(t, 3.0, *got[3], 1e-9)
		require.NotNil(t, got[4])
		assert.InDelta(t, 4.0, *got[4], 1e-9)
	})

	t.Run("series shorter than window is all nil", func(t *testing.T) {
		got := svc.ComputeMovingAverage(history(1, 2), 3)
		require.Len(t, got, 2)
		assert.Nil(t, got[0])
		assert.Nil(t, got[1])
	})

	t.Run("period equal to length fills only the last slot", func(t *testing.T) {
		got := svc.ComputeMovingAverage(history(2, 4, 6), 3)
		require.Len(t, got, 3)
		assert.Nil(t, got[0])
		assert.Nil(t, got[1])
		require.NotNil(t, got[2])
		assert.InDelta(t, 4.0, *got[2], 1e-9)
	})

	t.Run("non-positive period yields all nil", func(t *testing.T) {
		got := svc.ComputeMovingAverage(history(1, 2, 3), 0)
		require.Len(t, got, 3)
		for _, v := range got {
			assert.Nil(t, v)
		}
	})
}

func TestIndicatorService_SynthesizeOHLC(t *testing.T) {
	svc := NewIndicatorService()

	t.Run("fills open from previous close and pads high and low", func(t *testing.T) {
		got := svc.SynthesizeOHLC(history(100, 110))
		require.Len(t, got, 2)

		require.NotNil(t, got[0].Open)
		assert.InDelta(t, 100.0, *got[0].Open, 1e-9)
		require.NotNil(t, got[0].High)
		assert.InDelta(t, 100*1.003, *got[0].High, 1e-9)
		require.NotNil(t, got[0].Low)
		assert.InDelta(t, 100*0.997, *got[0].Low, 1e-9)

		require.NotNil(t, got[1].Open)
		assert.InDelta(t, 100.0, *got[1].Open, 1e-9)
		require.NotNil(t, got[1].High)
		assert.InDelta(t, 110*1.003, *got[1].High, 1e-9)
		require.NotNil(t, got[1].Low)
		assert.InDelta(t, 100*0.997, *got[1].Low, 1e-9)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		input := []entity.PricePoint{{
			Date:  "2026-01-01",
			Close: 50,
			Open:  floatPtr(49),
			High:  floatPtr(52),
			Low:   floatPtr(48),
		}}
		got := svc.SynthesizeOHLC(input)
		require.Len(t, got, 1)
		assert.Equal(t, 49.0, *got[0].Open)
		assert.Equal(t, 52.0, *got[0].High)
		assert.Equal(t, 48.0, *got[0].Low)
	})

	t.Run("drops non-positive closes", func(t *testing.T) {
		input := history(100, 0, 110)
		input = append(input, entity.PricePoint{Date: "2026-01-09", Close: -5})
		got := svc.SynthesizeOHLC(input)
		require.Len(t, got, 2)
		assert.Equal(t, 100.0, got[0].Close)
		assert.Equal(t, 110.0, got[1].Close)
		// open carries over the previous kept close, not the dropped one
		assert.InDelta(t, 100.0, *got[1].Open, 1e-9)
	})
}

func TestIndicatorService_ComputeDisplayRange(t *testing.T) {
	svc := NewIndicatorService()

	t.Run("pads around min and max", func(t *testing.T) {
		low, high := svc.ComputeDisplayRange([]float64{50, 48, 52}, 0.05)
		assert.InDelta(t, 48*0.95, low, 1e-9)
		assert.InDelta(t, 52*1.05, high, 1e-9)
	})

	t.Run("single value", func(t *testing.T) {
		low, high := svc.ComputeDisplayRange([]float64{50}, 0.05)
		assert.InDelta(t, 47.5, low, 1e-9)
		assert.InDelta(t, 52.5, high, 1e-9)
	})

	t.Run("empty input falls back to 0..100", func(t *testing.T) {
		low, high := svc.ComputeDisplayRange(nil, 0.05)
		assert.Equal(t, 0.0, low)
		assert.Equal(t, 100.0, high)
	})

	t.Run("non-finite values are ignored", func(t *testing.T) {
		low, high := svc.ComputeDisplayRange([]float64{math.Inf(1), math.NaN(), 10, 20}, 0)
		assert.Equal(t, 10.0, low)
		assert.Equal(t, 20.0, high)
	})
}
