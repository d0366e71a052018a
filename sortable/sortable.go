// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-sort/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare orders two Sortable values. It is the bridge that lets any
// Sortable type be passed to the sorting package as a comparator:
//
//	sorting.Quick[sortable.String](seq, sortable.Compare[sortable.String])
func Compare[T Sortable[T]](a, b T) compare.Ordering {
	switch {
	case a.LessThan(b):
		return compare.Less
	case a.Equals(b):
		return compare.Equal
	default:
		return compare.Greater
	}
}

// Comparator returns Compare as a compare.Comparator value.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
