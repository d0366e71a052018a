//nolint:ireturn
package tuple

import "github.com/amp-labs/amp-sort/compare"

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// ByFirst orders pairs by their first element only, leaving pairs with equal
// first elements Equal. Sorting (key, originalIndex) pairs with it is how
// stability is observed.
func ByFirst[A, B any](c compare.Comparator[A]) compare.Comparator[Tuple2[A, B]] {
	return func(x, y Tuple2[A, B]) compare.Ordering {
		return c(x.first, y.first)
	}
}

// BySecond orders pairs by their second element only.
func BySecond[A, B any](c compare.Comparator[B]) compare.Comparator[Tuple2[A, B]] {
	return func(x, y Tuple2[A, B]) compare.Ordering {
		return c(x.second, y.second)
	}
}

// Indexed pairs every value with its position, ready for stability checks.
func Indexed[A any](values []A) []Tuple2[A, int] {
	out := make([]Tuple2[A, int], len(values))
	for i, v := range values {
		out[i] = NewTuple2(v, i)
	}

	return out
}
