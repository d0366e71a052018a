package sorting

import (
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sequence"
)

// Selection sorts seq in place with selection sort and returns it.
//
// For each boundary i it scans the unsorted suffix for its minimum and swaps
// that into position i. It always performs N(N-1)/2 comparisons and at most
// N-1 swaps. Not stable.
func Selection[T any](
	seq sequence.Sequence[T], cmp compare.Comparator[T], opts ...Option,
) (sequence.Sequence[T], error) {
	return execute(AlgorithmSelection, seq, cmp, opts, selectionSort[T])
}

func selectionSort[T any](s *sorter[T]) error {
	n := s.seq.Len()

	for i := 0; i < n-1; i++ {
		if err := s.pass(); err != nil {
			return err
		}

		minIndex := i

		for j := i + 1; j < n; j++ {
			if s.compareAt(j, minIndex) == compare.Less {
				minIndex = j
			}
		}

		if minIndex != i {
			s.swap(i, minIndex)
		}
	}

	return nil
}
