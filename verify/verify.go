// Package verify checks the post-conditions of a sort: order, permutation,
// idempotence and stability.
package verify

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sequence"
	"github.com/amp-labs/amp-sort/tuple"
	"github.com/zeebo/xxh3"
)

// Encoder turns an element into bytes for hashing. Equal elements must
// encode identically.
type Encoder[T any] func(T) []byte

// IsSorted reports whether no adjacent pair of seq is out of order under c.
func IsSorted[T any](seq sequence.Sequence[T], c compare.Comparator[T]) bool {
	_, found := FirstInversion(seq, c)

	return !found
}

// FirstInversion returns the first index i with seq[i] > seq[i+1].
func FirstInversion[T any](seq sequence.Sequence[T], c compare.Comparator[T]) (int, bool) {
	for i := 0; i+1 < seq.Len(); i++ {
		if c(seq.At(i), seq.At(i+1)) == compare.Greater {
			return i, true
		}
	}

	return 0, false
}

// Fingerprint returns a hash of the multiset of elements in seq. Any
// permutation of the same elements has the same fingerprint.
func Fingerprint[T any](seq sequence.Sequence[T], encode Encoder[T]) uint64 {
	var sum uint64

	for i := range seq.Len() {
		sum += xxh3.Hash(encode(seq.At(i)))
	}

	return sum
}

// Checksum returns an order-sensitive hash of seq: two sequences share a
// checksum only if they hold the same elements in the same order.
func Checksum[T any](seq sequence.Sequence[T], encode Encoder[T]) uint64 {
	h := xxhash.New64()

	var length [8]byte

	for i := range seq.Len() {
		b := encode(seq.At(i))

		// Length-prefix each element so that ["ab","c"] and ["a","bc"] differ.
		binary.LittleEndian.PutUint64(length[:], uint64(len(b)))
		_, _ = h.Write(length[:])
		_, _ = h.Write(b)
	}

	return h.Sum64()
}

// IsStable reports whether seq, holding (key, originalIndex) pairs, keeps
// original indices ascending within every run of equal keys.
func IsStable[K any](seq sequence.Sequence[tuple.Tuple2[K, int]], c compare.Comparator[K]) bool {
	for i := 0; i+1 < seq.Len(); i++ {
		a, b := seq.At(i), seq.At(i+1)

		if c(a.First(), b.First()) == compare.Equal && a.Second() > b.Second() {
			return false
		}
	}

	return true
}

// Int encodes an int as 8 little-endian bytes.
func Int(v int) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(v)) //nolint:gosec
}

// String encodes a string as its bytes.
func String(v string) []byte {
	return []byte(v)
}
