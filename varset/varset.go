// Package varset maintains the sorted, de-duplicated set of distinct
// variable indices an expression references.
package varset

import (
	"math"
	"sort"

	"axioncore/axerr"
)

// Set is a sorted, duplicate-free sequence of zero-based variable
// indices, backed by a dynamically grown array. Lookup and insertion
// position are found by binary search.
type Set struct {
	items []int
}

// New returns an empty set.
func New() *Set { return &Set{} }

// Len returns the distinct variable count.
func (s *Set) Len() int { return len(s.items) }

// At returns the i-th distinct variable index in ascending order.
func (s *Set) At(i int) int { return s.items[i] }

// Max returns the largest index in the set, or -1 if empty.
func (s *Set) Max() int {
	if len(s.items) == 0 {
		return -1
	}
	return s.items[len(s.items)-1]
}

// Slice returns the underlying sorted slice. Callers must not mutate it.
func (s *Set) Slice() []int { return s.items }

// Insert adds idx to the set if not already present. The backing array
// starts at capacity 1 and doubles whenever it is full, which happens
// exactly when the element count is zero or a power of two. An
// insertion that would exceed math.MaxInt elements fails.
func (s *Set) Insert(idx int) *axerr.Error {
	pos := sort.SearchInts(s.items, idx)
	if pos < len(s.items) && s.items[pos] == idx {
		return nil
	}
	if len(s.items) == math.MaxInt {
		return axerr.New(axerr.NVar, "too many variables", "", 0)
	}
	if len(s.items) == cap(s.items) {
		newCap := 1
		if c := cap(s.items); c > math.MaxInt/2 {
			newCap = math.MaxInt
		} else if c > 0 {
			newCap = 2 * c
		}
		grown := make([]int, len(s.items), newCap)
		copy(grown, s.items)
		s.items = grown
	}
	s.items = append(s.items, 0)
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = idx
	return nil
}
