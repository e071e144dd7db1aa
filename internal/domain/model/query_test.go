package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductQuery_Normalized(t *testing.T) {
	q := ProductQuery{}.Normalized()
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)

	q = ProductQuery{Page: 3, Limit: 5}.Normalized()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 5, q.Limit)
}

func TestProductQuery_Ascending(t *testing.T) {
	assert.True(t, ProductQuery{SortDirection: SortAsc}.Ascending())
	assert.False(t, ProductQuery{SortDirection: SortDesc}.Ascending())
	// 未指定は降順
	assert.False(t, ProductQuery{}.Ascending())
}

func TestProductQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, ProductQuery{}.Offset())
	assert.Equal(t, 24, ProductQuery{Page: 3, Limit: 12}.Offset())
}

func TestProductQuery_Offset_Saturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, ProductQuery{Page: 4611686018427387905, Limit: 3}.Offset())
	assert.Equal(t, math.MaxInt, ProductQuery{Page: 4611686018427387905, Limit: 4}.Offset())
	assert.Equal(t, math.MaxInt, ProductQuery{Page: math.MaxInt, Limit: MaxLimit}.Offset())
}
