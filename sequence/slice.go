package sequence

// Slice adapts a Go slice to the Sequence interface. Writes go straight to
// the backing array, so sorting a Slice sorts the slice it was made from.
type Slice[T any] []T

var _ Sequence[int] = Slice[int](nil)

var _ Swapper = Slice[int](nil)

// Of builds a Slice from the given values.
func Of[T any](values ...T) Slice[T] {
	return Slice[T](values)
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) At(i int) T { //nolint:ireturn
	return s[i]
}

func (s Slice[T]) Set(i int, v T) {
	s[i] = v
}

func (s Slice[T]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
