package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	t.Run("first page starts at zero", func(t *testing.T) {
		offset, limit := CalculateOffsetLimit(1, 10)
		assert.Equal(t, uint64(0), offset)
		assert.Equal(t, 10, limit)
	})

	t.Run("later pages advance the offset", func(t *testing.T) {
		offset, limit := CalculateOffsetLimit(3, 20)
		assert.Equal(t, uint64(40), offset)
		assert.Equal(t, 20, limit)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		offset, limit := CalculateOffsetLimit(0, 0)
		assert.Equal(t, uint64(0), offset)
		assert.Equal(t, DefaultPageSize, limit)

		offset, limit = CalculateOffsetLimit(2, MaxPageSize+1)
		assert.Equal(t, uint64(DefaultPageSize), offset)
		assert.Equal(t, DefaultPageSize, limit)
	})
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("computes total pages with a partial last page", func(t *testing.T) {
		info := NewPaginationInfo(25, 1, 10)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, int64(25), info.TotalItems)
	})

	t.Run("empty result set still reports one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("current page is clamped to the last page", func(t *testing.T) {
		info := NewPaginationInfo(5, 9, 10)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 1, info.TotalPages)
	})
}
