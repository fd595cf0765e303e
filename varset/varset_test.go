package varset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_SortedAndDeduplicated(t *testing.T) {
	s := New()
	for _, idx := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		require.Nil(t, s.Insert(idx))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 9}, s.Slice())
	assert.Equal(t, 9, s.Max())
	assert.Equal(t, 7, s.Len())
}

func TestInsert_DuplicateIsNoOp(t *testing.T) {
	s := New()
	require.Nil(t, s.Insert(5))
	require.Nil(t, s.Insert(5))
	assert.Equal(t, 1, s.Len())
}

func TestMax_EmptySet(t *testing.T) {
	s := New()
	assert.Equal(t, -1, s.Max())
}

func TestAt_AscendingOrder(t *testing.T) {
	s := New()
	require.Nil(t, s.Insert(7))
	require.Nil(t, s.Insert(2))
	require.Nil(t, s.Insert(5))
	assert.Equal(t, 2, s.At(0))
	assert.Equal(t, 5, s.At(1))
	assert.Equal(t, 7, s.At(2))
}
