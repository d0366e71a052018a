package sorting

import "fmt"

// Stats counts the work a sort performed. A Stats passed with WithStats is
// added to, not overwritten, so one value can total several calls.
type Stats struct {
	// Comparisons is the number of comparator invocations.
	Comparisons int
	// Swaps is the number of element exchanges.
	Swaps int
	// Writes counts single-element stores that are not part of a swap
	// (insertion sort's shifts and key placement).
	Writes int
	// Passes counts outer iterations: one per boundary step for selection,
	// per scan for bubble, per key for insertion and per partition for quick.
	Passes int
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Comparisons += other.Comparisons
	s.Swaps += other.Swaps
	s.Writes += other.Writes
	s.Passes += other.Passes
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	*s = Stats{}
}

func (s Stats) String() string {
	return fmt.Sprintf("comparisons=%d swaps=%d writes=%d passes=%d",
		s.Comparisons, s.Swaps, s.Writes, s.Passes)
}
