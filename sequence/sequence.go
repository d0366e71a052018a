// Package sequence defines the index-addressed, mutable sequence abstraction
// that the sorts in this module operate on.
//
// Any randomly-accessible container can be sorted in place by implementing
// [Sequence]. Plain Go slices are covered by [Slice]:
//
//	values := sequence.Of(70, 30, 50)
//	sorting.Quick[int](values, compare.Natural[int]())
package sequence

import "reflect"

// Sequence is a finite, mutable, randomly indexable container.
// Indices run from 0 to Len()-1; out-of-range access may panic.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
}

// Swapper is implemented by sequences that can exchange two elements more
// cheaply than two At/Set round trips.
type Swapper interface {
	Swap(i, j int)
}

// Swap exchanges the elements at i and j. It uses the sequence's own Swap
// when available.
func Swap[T any](seq Sequence[T], i, j int) {
	if s, ok := seq.(Swapper); ok {
		s.Swap(i, j)

		return
	}

	a := seq.At(i)
	seq.Set(i, seq.At(j))
	seq.Set(j, a)
}

// IsNil reports whether seq is a nil interface or a nil pointer, map, func
// or channel hiding behind the interface. A nil slice is not nil here: it is
// a valid empty sequence.
func IsNil[T any](seq Sequence[T]) bool {
	if seq == nil {
		return true
	}

	val := reflect.ValueOf(seq)

	switch val.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface:
		return val.IsNil()
	}

	return false
}

// Values copies the elements of seq into a new slice.
func Values[T any](seq Sequence[T]) []T {
	out := make([]T, seq.Len())
	for i := range out {
		out[i] = seq.At(i)
	}

	return out
}
