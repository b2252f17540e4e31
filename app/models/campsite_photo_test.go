package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSortOrder_DenseSequence(t *testing.T) {
	t.Parallel()

	// Client sent gaps and an out-of-range value after a long drag
	orders := []PhotoOrder{
		{ID: 7, SortOrder: 10},
		{ID: 3, SortOrder: 0},
		{ID: 9, SortOrder: 4},
		{ID: 1, SortOrder: 99},
	}

	normalized := NormalizeSortOrder(orders)

	assert.Len(t, normalized, 4)
	for i, o := range normalized {
		assert.Equalf(t, i, o.SortOrder, "position %d", i)
	}
	// Visual order preserved: 3, 9, 7, 1
	assert.Equal(t, uint(3), normalized[0].ID)
	assert.Equal(t, uint(9), normalized[1].ID)
	assert.Equal(t, uint(7), normalized[2].ID)
	assert.Equal(t, uint(1), normalized[3].ID)
}

func TestNormalizeSortOrder_StableOnTies(t *testing.T) {
	t.Parallel()

	orders := []PhotoOrder{
		{ID: 1, SortOrder: 0},
		{ID: 2, SortOrder: 0},
		{ID: 3, SortOrder: 0},
	}

	normalized := NormalizeSortOrder(orders)

	assert.Equal(t, uint(1), normalized[0].ID)
	assert.Equal(t, uint(2), normalized[1].ID)
	assert.Equal(t, uint(3), normalized[2].ID)
	assert.Equal(t, []int{0, 1, 2}, []int{normalized[0].SortOrder, normalized[1].SortOrder, normalized[2].SortOrder})
}

func TestNormalizeSortOrder_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	orders := []PhotoOrder{{ID: 1, SortOrder: 5}, {ID: 2, SortOrder: 1}}
	_ = NormalizeSortOrder(orders)

	assert.Equal(t, 5, orders[0].SortOrder)
	assert.Equal(t, 1, orders[1].SortOrder)
}

func TestMatchesPhotoSet(t *testing.T) {
	t.Parallel()

	photos := []CampsitePhoto{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.True(t, MatchesPhotoSet([]PhotoOrder{{ID: 3}, {ID: 1}, {ID: 2}}, photos))
	// missing photo
	assert.False(t, MatchesPhotoSet([]PhotoOrder{{ID: 1}, {ID: 2}}, photos))
	// unknown photo
	assert.False(t, MatchesPhotoSet([]PhotoOrder{{ID: 1}, {ID: 2}, {ID: 4}}, photos))
	// duplicate mention
	assert.False(t, MatchesPhotoSet([]PhotoOrder{{ID: 1}, {ID: 2}, {ID: 2}}, photos))
}
