// Package sorting implements four classic in-place comparison sorts behind
// one interchangeable signature, [Strategy]:
//
//   - [Selection]: O(N²) always, not stable.
//   - [Bubble]: O(N²), O(N) on sorted input thanks to early exit, stable.
//   - [Insertion]: O(N²), O(N) on nearly sorted input, stable.
//   - [Quick]: Lomuto partition, O(N log N) average, not stable.
//
// Every strategy sorts the sequence it is given in place, ascending under the
// supplied comparator, and returns that same sequence:
//
//	values := sequence.Of(70, 30, 50, 20, 40, -50)
//	_, err := sorting.Quick[int](values, compare.Natural[int]())
//	// values is now -50, 20, 30, 40, 50, 70
//
// # Quick sort pivots
//
// Quick sort pivots on the last element of each range by default. That
// degrades to N(N-1)/2 comparisons and N-deep partitioning on sorted or
// reverse-sorted input. [WithPivot]([PivotMedianOfThree]) opts into
// median-of-three selection, which keeps the same partition scheme but
// restores O(N log N) on those inputs. Either way the recursion descends into
// the smaller partition first, so stack depth stays O(log N).
//
// # Choosing a strategy
//
// Strategies can be picked by name with [ParseAlgorithm] and [Lookup], or by
// input size with [Hybrid], which uses insertion sort up to a threshold and
// quick sort above it.
//
// # Errors
//
// A nil sequence, nil comparator or nil strategy fails fast with
// errors.ErrInvalidArgument before the sequence is touched. A context passed
// with [WithContext] is checked once per pass (per partition for quick sort);
// if it is done the sort stops with errors.ErrSortAborted and the sequence
// holds a permutation of its input. A comparator that is not a consistent
// total order doesn't cause a panic, but the resulting order is unspecified.
//
// # Instrumentation
//
// [WithStats] accumulates comparison, swap, write and pass counts.
// [WithObserver] reports each top-level call once, after it finishes; see
// [LogObserver], and the metrics and spans packages.
package sorting
