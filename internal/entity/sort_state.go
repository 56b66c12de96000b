package entity

// SortDirection is the tri-state direction of a table sort.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
	SortUnordered  SortDirection = "none"
)

// SortState tracks which column a result table is sorted by. The zero
// value means unsorted.
type SortState struct {
	ColumnKey string        `json:"column_key,omitempty"`
	Direction SortDirection `json:"direction"`
}

// Next returns the sort state after the user selects columnKey: repeated
// selections of the same column cycle asc -> desc -> none -> asc, while a
// different column resets to ascending.
func (s SortState) Next(columnKey string) SortState {
	if s.ColumnKey != columnKey {
		return SortState{ColumnKey: columnKey, Direction: SortAscending}
	}
	switch s.Direction {
	case SortAscending:
		return SortState{ColumnKey: columnKey, Direction: SortDescending}
	case SortDescending:
		return SortState{ColumnKey: columnKey, Direction: SortUnordered}
	default:
		return SortState{ColumnKey: columnKey, Direction: SortAscending}
	}
}
