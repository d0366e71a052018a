package sorting

import (
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sequence"
)

// Bubble sorts seq in place with bubble sort and returns it.
//
// Each pass swaps adjacent pairs that are strictly out of order, so equal
// elements never trade places and the sort is stable. A pass without swaps
// ends the sort: already sorted input costs one pass of N-1 comparisons.
func Bubble[T any](
	seq sequence.Sequence[T], cmp compare.Comparator[T], opts ...Option,
) (sequence.Sequence[T], error) {
	return execute(AlgorithmBubble, seq, cmp, opts, bubbleSort[T])
}

func bubbleSort[T any](s *sorter[T]) error {
	n := s.seq.Len()

	for i := 0; i < n-1; i++ {
		if err := s.pass(); err != nil {
			return err
		}

		swapped := false

		for j := 0; j < n-i-1; j++ {
			if s.compareAt(j, j+1) == compare.Greater {
				s.swap(j, j+1)

				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	return nil
}
