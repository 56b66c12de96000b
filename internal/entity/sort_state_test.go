package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortState_Next(t *testing.T) {
	t.Run("cycles through the three directions on the same column", func(t *testing.T) {
		s := SortState{}

		s = s.Next(ColumnVRP)
		assert.Equal(t, SortState{ColumnKey: ColumnVRP, Direction: SortAscending}, s)

		s = s.Next(ColumnVRP)
		assert.Equal(t, SortState{ColumnKey: ColumnVRP, Direction: SortDescending}, s)

		s = s.Next(ColumnVRP)
		assert.Equal(t, SortState{ColumnKey: ColumnVRP, Direction: SortUnordered}, s)

		s = s.Next(ColumnVRP)
		assert.Equal(t, SortState{ColumnKey: ColumnVRP, Direction: SortAscending}, s)
	})

	t.Run("selecting a different column resets to ascending", func(t *testing.T) {
		s := SortState{ColumnKey: ColumnVRP, Direction: SortDescending}

		s = s.Next(ColumnPrice)
		assert.Equal(t, SortState{ColumnKey: ColumnPrice, Direction: SortAscending}, s)
	})
}
