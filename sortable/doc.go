// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling them to be ordered by the sorts in this module.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float], and [String].
// These types can be handed straight to the in-place sorts in
// [github.com/amp-labs/amp-sort/sorting] through [Compare].
//
// The Sortable interface extends [github.com/amp-labs/amp-sort/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Wrap values and sort them with the Sortable-derived comparator:
//
//	values := sequence.Of[sortable.Int](42, 10, 25)
//	sorting.Insertion[sortable.Int](values, sortable.Compare[sortable.Int])
//	// values is now 10, 25, 42
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// LessThan must be a strict weak order consistent with Equals: for any a
// and b exactly one of a.LessThan(b), a.Equals(b), b.LessThan(a) holds.
// [Compare] relies on that to map the pair onto a single compare.Ordering.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. The sequences they are sorted in are not; a sort owns its
// sequence for the duration of the call.
package sortable
