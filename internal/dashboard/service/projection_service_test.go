package service

import (
	"testing"

	"golang-market-screener/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []entity.ResultRow {
	return []entity.ResultRow{
		{Ticker: "AAPL", Sector: "Information Technology", VRP: floatPtr(2.5), Price: floatPtr(180)},
		{Ticker: "XOM", Sector: "Energy", VRP: floatPtr(-1.0), Price: floatPtr(110)},
		{Ticker: "JPM", Sector: "Financials", Price: floatPtr(195)},
		{Ticker: "NVDA", Sector: "Information Technology", VRP: floatPtr(4.0), Price: floatPtr(620)},
		{Ticker: "KO", Sector: "Consumer Staples", VRP: floatPtr(-1.0), Price: floatPtr(60)},
	}
}

func tickers(rows []entity.ResultRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Ticker
	}
	return out
}

func TestProjectionService_SortBy(t *testing.T) {
	svc := NewProjectionService()

	t.Run("ascending numeric sort treats missing values as zero", func(t *testing.T) {
		got := svc.SortBy(sampleRows(), entity.ColumnVRP, entity.SortAscending)
		assert.Equal(t, []string{"XOM", "KO", "JPM", "AAPL", "NVDA"}, tickers(got))
	})

	t.Run("descending numeric sort", func(t *testing.T) {
		got := svc.SortBy(sampleRows(), entity.ColumnVRP, entity.SortDescending)
		assert.Equal(t, []string{"NVDA", "AAPL", "JPM", "XOM", "KO"}, tickers(got))
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		got := svc.SortBy(sampleRows(), entity.ColumnVRP, entity.SortAscending)
		// XOM and KO are tied at -1.0; XOM was inserted first
		assert.Equal(t, "XOM", got[0].Ticker)
		assert.Equal(t, "KO", got[1].Ticker)
	})

	t.Run("unordered returns insertion order", func(t *testing.T) {
		got := svc.SortBy(sampleRows(), entity.ColumnVRP, entity.SortUnordered)
		assert.Equal(t, []string{"AAPL", "XOM", "JPM", "NVDA", "KO"}, tickers(got))
	})

	t.Run("string column sorts lexically", func(t *testing.T) {
		got := svc.SortBy(sampleRows(), entity.ColumnTicker, entity.SortAscending)
		assert.Equal(t, []string{"AAPL", "JPM", "KO", "NVDA", "XOM"}, tickers(got))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		rows := sampleRows()
		svc.SortBy(rows, entity.ColumnVRP, entity.SortDescending)
		assert.Equal(t, []string{"AAPL", "XOM", "JPM", "NVDA", "KO"}, tickers(rows))
	})
}

func TestProjectionService_CycleSort(t *testing.T) {
	svc := NewProjectionService()

	state := svc.CycleSort(entity.SortState{}, entity.ColumnVRP)
	assert.Equal(t, entity.SortAscending, state.Direction)

	state = svc.CycleSort(state, entity.ColumnVRP)
	assert.Equal(t, entity.SortDescending, state.Direction)

	state = svc.CycleSort(state, entity.ColumnPrice)
	assert.Equal(t, entity.SortState{ColumnKey: entity.ColumnPrice, Direction: entity.SortAscending}, state)
}

func TestProjectionService_ClassifyTopCandidates(t *testing.T) {
	svc := NewProjectionService()

	t.Run("splits lowest and highest by metric", func(t *testing.T) {
		longs, shorts := svc.ClassifyTopCandidates(sampleRows(), entity.ColumnVRP, 2)
		assert.Equal(t, []string{"XOM", "KO"}, tickers(longs))
		assert.Equal(t, []string{"NVDA", "AAPL"}, tickers(shorts))
	})

	t.Run("rows without the metric are excluded, not zeroed", func(t *testing.T) {
		longs, shorts := svc.ClassifyTopCandidates(sampleRows(), entity.ColumnVRP, 10)
		require.Len(t, longs, 4)
		require.Len(t, shorts, 4)
		assert.NotContains(t, tickers(longs), "JPM")
		assert.NotContains(t, tickers(shorts), "JPM")
	})

	t.Run("count larger than the set returns everything ranked", func(t *testing.T) {
		longs, _ := svc.ClassifyTopCandidates(sampleRows(), entity.ColumnVRP, 100)
		assert.Equal(t, []string{"XOM", "KO", "AAPL", "NVDA"}, tickers(longs))
	})

	t.Run("empty input yields empty sides", func(t *testing.T) {
		longs, shorts := svc.ClassifyTopCandidates(nil, entity.ColumnVRP, 6)
		assert.Empty(t, longs)
		assert.Empty(t, shorts)
	})
}
