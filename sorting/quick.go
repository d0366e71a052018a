package sorting

import (
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sequence"
)

// Quick sorts seq in place with quick sort and returns it.
//
// Ranges are split with the Lomuto scheme: everything strictly less than the
// pivot ends up before it, and the pivot lands in its final position. The
// pivot is the last element of the range unless WithPivot says otherwise.
// With the default pivot, sorted and reverse-sorted inputs are the worst
// case at N(N-1)/2 comparisons. Not stable.
func Quick[T any](
	seq sequence.Sequence[T], cmp compare.Comparator[T], opts ...Option,
) (sequence.Sequence[T], error) {
	return execute(AlgorithmQuick, seq, cmp, opts, quickSort[T])
}

func quickSort[T any](s *sorter[T]) error {
	return s.quickRange(0, s.seq.Len()-1)
}

// quickRange sorts the inclusive range [low, high]. It recurses into the
// smaller side of each partition and loops on the larger one, which visits
// the same partitions as recursing into both.
func (s *sorter[T]) quickRange(low, high int) error {
	for low < high {
		if err := s.pass(); err != nil {
			return err
		}

		p := s.partition(low, high)

		if p-low < high-p {
			if err := s.quickRange(low, p-1); err != nil {
				return err
			}

			low = p + 1
		} else {
			if err := s.quickRange(p+1, high); err != nil {
				return err
			}

			high = p - 1
		}
	}

	return nil
}

// partition applies the Lomuto scheme to [low, high] and returns the final
// index of the pivot.
func (s *sorter[T]) partition(low, high int) int {
	if s.pivot == PivotMedianOfThree && high-low >= 2 {
		s.medianToHigh(low, high)
	}

	pivot := s.seq.At(high)
	boundary := low - 1

	for j := low; j < high; j++ {
		if s.compare(s.seq.At(j), pivot) == compare.Less {
			boundary++

			if boundary != j {
				s.swap(boundary, j)
			}
		}
	}

	if boundary+1 != high {
		s.swap(boundary+1, high)
	}

	return boundary + 1
}

// medianToHigh orders the first, middle and last elements of the range so
// that the median of the three sits at high.
func (s *sorter[T]) medianToHigh(low, high int) {
	mid := low + (high-low)/2

	if s.compareAt(mid, low) == compare.Less {
		s.swap(low, mid)
	}

	if s.compareAt(high, low) == compare.Less {
		s.swap(low, high)
	}

	if s.compareAt(mid, high) == compare.Less {
		s.swap(mid, high)
	}
}
