package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestResultRow_Metric(t *testing.T) {
	row := ResultRow{
		Ticker: "NVDA",
		Sector: "Information Technology",
		Price:  floatPtr(620.5),
		VRP:    floatPtr(-1.2),
	}

	t.Run("present column", func(t *testing.T) {
		v, ok := row.Metric(ColumnPrice)
		assert.True(t, ok)
		assert.Equal(t, 620.5, v)
	})

	t.Run("present negative value", func(t *testing.T) {
		v, ok := row.Metric(ColumnVRP)
		assert.True(t, ok)
		assert.Equal(t, -1.2, v)
	})

	t.Run("missing column", func(t *testing.T) {
		v, ok := row.Metric(ColumnIV)
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("unknown column key", func(t *testing.T) {
		v, ok := row.Metric("No Such Column")
		assert.False(t, ok)
		assert.Zero(t, v)
	})
}

func TestResultRow_DisplayValue(t *testing.T) {
	row := ResultRow{Ticker: "AAPL", CallWall: floatPtr(200)}

	assert.Equal(t, 200.0, row.DisplayValue(ColumnCallWall))
	assert.Equal(t, 0.0, row.DisplayValue(ColumnPutWall))
}
