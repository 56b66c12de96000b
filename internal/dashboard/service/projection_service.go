package service

import (
	"sort"
	"strings"

	"golang-market-screener/internal/entity"
)

// ProjectionService derives display orderings and candidate subsets from
// a result set without mutating it.
type ProjectionService interface {
	SortBy(rows []entity.ResultRow, columnKey string, direction entity.SortDirection) []entity.ResultRow
	CycleSort(state entity.SortState, columnKey string) entity.SortState
	ClassifyTopCandidates(rows []entity.ResultRow, metricKey string, count int) (longs []entity.ResultRow, shorts []entity.ResultRow)
}

type projectionService struct{}

// NewProjectionService creates a new projection service.
func NewProjectionService() ProjectionService {
	return &projectionService{}
}

// SortBy returns a new slice ordered by the given column. The input
// order is the insertion order and is returned untouched when no
// direction is active. Rows missing the column value sort as zero. Ties
// keep their relative insertion order.
func (s *projectionService) SortBy(rows []entity.ResultRow, columnKey string, direction entity.SortDirection) []entity.ResultRow {
	out := make([]entity.ResultRow, len(rows))
	copy(out, rows)

	if columnKey == "" || direction == entity.SortUnordered {
		return out
	}

	var less func(i, j int) bool
	switch columnKey {
	case entity.ColumnTicker:
		less = func(i, j int) bool {
			return strings.Compare(out[i].Ticker, out[j].Ticker) < 0
		}
	case entity.ColumnSector:
		less = func(i, j int) bool {
			return strings.Compare(out[i].Sector, out[j].Sector) < 0
		}
	default:
		less = func(i, j int) bool {
			return out[i].DisplayValue(columnKey) < out[j].DisplayValue(columnKey)
		}
	}

	if direction == entity.SortDescending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(out, less)
	return out
}

// CycleSort advances the table sort state for a column selection.
func (s *projectionService) CycleSort(state entity.SortState, columnKey string) entity.SortState {
	return state.Next(columnKey)
}

// ClassifyTopCandidates splits the result set into the count lowest
// (longs) and count highest (shorts) rows by the given metric. Rows
// without the metric are excluded rather than treated as zero, and ties
// keep their insertion order.
func (s *projectionService) ClassifyTopCandidates(rows []entity.ResultRow, metricKey string, count int) ([]entity.ResultRow, []entity.ResultRow) {
	ranked := make([]entity.ResultRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := row.Metric(metricKey); ok {
			ranked = append(ranked, row)
		}
	}
	if count < 0 {
		count = 0
	}

	longs := make([]entity.ResultRow, len(ranked))
	copy(longs, ranked)
	sort.SliceStable(longs, func(i, j int) bool {
		vi, _ := longs[i].Metric(metricKey)
		vj, _ := longs[j].Metric(metricKey)
		return vi < vj
	})

	shorts := make([]entity.ResultRow, len(ranked))
	copy(shorts, ranked)
	sort.SliceStable(shorts, func(i, j int) bool {
		vi, _ := shorts[i].Metric(metricKey)
		vj, _ := shorts[j].Metric(metricKey)
		return vi > vj
	})

	if len(longs) > count {
		longs = longs[:count]
	}
	if len(shorts) > count {
		shorts = shorts[:count]
	}
	return longs, shorts
}
