package sortable

import "cmp"

// Float is a sortable wrapper type for float64. NaN sorts before every other
// value and is equal to itself, so a slice containing NaNs still has a
// consistent total order.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

// Equals returns true if both values are equal, treating NaN as equal to NaN.
func (f Float) Equals(other Float) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

// LessThan returns true if this Float orders before the other Float.
func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}
