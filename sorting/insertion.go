package sorting

import (
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sequence"
)

// Insertion sorts seq in place with insertion sort and returns it.
//
// Each element in turn is lifted out and the strictly greater elements of the
// sorted prefix are shifted one slot right to make room for it. Stable, and
// O(N) on input that is already nearly sorted.
func Insertion[T any](
	seq sequence.Sequence[T], cmp compare.Comparator[T], opts ...Option,
) (sequence.Sequence[T], error) {
	return execute(AlgorithmInsertion, seq, cmp, opts, insertionSort[T])
}

func insertionSort[T any](s *sorter[T]) error {
	return s.insertionRange(0, s.seq.Len()-1)
}

// insertionRange sorts the inclusive range [low, high].
func (s *sorter[T]) insertionRange(low, high int) error {
	for i := low + 1; i <= high; i++ {
		if err := s.pass(); err != nil {
			return err
		}

		key := s.seq.At(i)
		j := i - 1

		for j >= low && s.compare(s.seq.At(j), key) == compare.Greater {
			s.set(j+1, s.seq.At(j))
			j--
		}

		if j+1 != i {
			s.set(j+1, key)
		}
	}

	return nil
}
