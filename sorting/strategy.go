package sorting

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sequence"
)

// Strategy is the signature shared by every sort in this package. It sorts
// seq in place and returns it.
type Strategy[T any] func(seq sequence.Sequence[T], cmp compare.Comparator[T], opts ...Option) (sequence.Sequence[T], error)

// Algorithm names a strategy.
type Algorithm string

const (
	AlgorithmSelection Algorithm = "selection"
	AlgorithmBubble    Algorithm = "bubble"
	AlgorithmInsertion Algorithm = "insertion"
	AlgorithmQuick     Algorithm = "quick"
	AlgorithmHybrid    Algorithm = "hybrid"
)

// DefaultHybridThreshold is the largest length Hybrid hands to insertion sort
// when looked up by name.
const DefaultHybridThreshold = 12

// Algorithms lists every known algorithm name.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmSelection,
		AlgorithmBubble,
		AlgorithmInsertion,
		AlgorithmQuick,
		AlgorithmHybrid,
	}
}

// ParseAlgorithm converts a name (case-insensitive, surrounding space
// ignored) into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))

	for _, known := range Algorithms() {
		if alg == known {
			return alg, nil
		}
	}

	return "", fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, name)
}

// Lookup returns the strategy for alg. AlgorithmHybrid uses
// DefaultHybridThreshold.
func Lookup[T any](alg Algorithm) (Strategy[T], error) {
	switch alg {
	case AlgorithmSelection:
		return Selection[T], nil
	case AlgorithmBubble:
		return Bubble[T], nil
	case AlgorithmInsertion:
		return Insertion[T], nil
	case AlgorithmQuick:
		return Quick[T], nil
	case AlgorithmHybrid:
		return Hybrid[T](DefaultHybridThreshold), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, string(alg))
	}
}

// Hybrid returns a strategy that uses insertion sort for sequences of at
// most threshold elements and quick sort for longer ones. A negative
// threshold is treated as zero. Observers see the algorithm that ran, with
// the name "hybrid" unless WithName overrides it.
func Hybrid[T any](threshold int) Strategy[T] {
	threshold = max(threshold, 0)

	return func(seq sequence.Sequence[T], cmp compare.Comparator[T], opts ...Option) (sequence.Sequence[T], error) {
		opts = append([]Option{WithName(string(AlgorithmHybrid))}, opts...)

		if !sequence.IsNil(seq) && seq.Len() <= threshold {
			return Insertion(seq, cmp, opts...)
		}

		return Quick(seq, cmp, opts...)
	}
}

// Properties describes the guarantees of an algorithm.
type Properties struct {
	Stable  bool
	InPlace bool
	Best    string
	Average string
	Worst   string
	Space   string
}

// Describe returns the Properties of alg.
func Describe(alg Algorithm) (Properties, error) {
	switch alg {
	case AlgorithmSelection:
		return Properties{InPlace: true, Best: "O(N^2)", Average: "O(N^2)", Worst: "O(N^2)", Space: "O(1)"}, nil
	case AlgorithmBubble:
		return Properties{Stable: true, InPlace: true, Best: "O(N)", Average: "O(N^2)", Worst: "O(N^2)", Space: "O(1)"}, nil
	case AlgorithmInsertion:
		return Properties{Stable: true, InPlace: true, Best: "O(N)", Average: "O(N^2)", Worst: "O(N^2)", Space: "O(1)"}, nil
	case AlgorithmQuick, AlgorithmHybrid:
		return Properties{
			InPlace: true, Best: "O(N log N)", Average: "O(N log N)", Worst: "O(N^2)", Space: "O(log N)",
		}, nil
	default:
		return Properties{}, fmt.Errorf("%w: %q", errors.ErrUnknownAlgorithm, string(alg))
	}
}

// SortSlice sorts s in place with strategy and returns it.
func SortSlice[T any](s []T, strategy Strategy[T], cmp compare.Comparator[T], opts ...Option) ([]T, error) {
	if strategy == nil {
		return s, fmt.Errorf("%w: nil strategy", errors.ErrInvalidArgument)
	}

	_, err := strategy(sequence.Slice[T](s), cmp, opts...)

	return s, err
}

// SortOrdered sorts s ascending by the natural order of T.
//
//	sorting.SortOrdered([]int{70, 30, 50, 20, 40, -50}, sorting.Selection[int])
//	// -50, 20, 30, 40, 50, 70
func SortOrdered[T cmp.Ordered](s []T, strategy Strategy[T], opts ...Option) ([]T, error) {
	return SortSlice(s, strategy, compare.Natural[T](), opts...)
}
