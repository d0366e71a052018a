package compare

import "cmp"

// Comparator imposes a total order over values of type T. It must be
// consistent: if a < b and b < c then a < c, and Equal must be symmetric.
// Inconsistent comparators don't crash the sorts in this module, but the
// resulting order is unspecified.
type Comparator[T any] func(a, b T) Ordering

// Natural returns the comparator for the built-in ordering of T.
// NaN floats sort before every other value, matching cmp.Compare.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) Ordering {
		return OrderingOf(cmp.Compare(a, b))
	}
}

// FromLess builds a Comparator from a strict less-than function.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) Ordering {
		switch {
		case less(a, b):
			return Less
		case less(b, a):
			return Greater
		default:
			return Equal
		}
	}
}

// FromInt adapts an int-returning comparison function, such as
// strings.Compare or bytes.Compare, into a Comparator.
func FromInt[T any](fn func(a, b T) int) Comparator[T] {
	return func(a, b T) Ordering {
		return OrderingOf(fn(a, b))
	}
}

// Reverse returns a comparator that orders values descending under c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) Ordering {
		return c(b, a)
	}
}

// By orders values of T by a key extracted from each value.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age }, compare.Natural[int]())
func By[T any, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) Ordering {
		return c(key(a), key(b))
	}
}

// Then returns a comparator that uses primary, and falls back to secondary
// only when primary reports Equal.
func Then[T any](primary, secondary Comparator[T]) Comparator[T] {
	return func(a, b T) Ordering {
		if o := primary(a, b); o != Equal {
			return o
		}

		return secondary(a, b)
	}
}

// Less reports whether a sorts before b.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) == Less
}

// Func converts the comparator into the int-returning form used by the
// slices package (slices.SortFunc and friends).
func (c Comparator[T]) Func() func(a, b T) int {
	return func(a, b T) int {
		return c(a, b).Int()
	}
}
