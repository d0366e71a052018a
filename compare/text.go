package compare

import (
	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalStrings orders strings so that embedded numbers compare by value,
// e.g. "file2" < "file10". Strings that differ only in the zero padding of a
// number, like "a01" and "a1", are Equal.
func NaturalStrings() Comparator[string] {
	return func(a, b string) Ordering {
		// natsort.Compare reports true for equal inputs, so it is only a
		// strict order when it disagrees with itself in reverse.
		ab := natsort.Compare(a, b)
		ba := natsort.Compare(b, a)

		switch {
		case ab && !ba:
			return Less
		case ba && !ab:
			return Greater
		default:
			return Equal
		}
	}
}

// Collated orders strings using the collation rules of the given language.
// Options such as collate.IgnoreCase or collate.Numeric are passed through.
//
// The returned comparator holds a collate.Collator, which keeps internal
// buffers and is not safe for concurrent use. Build one per goroutine.
func Collated(tag language.Tag, opts ...collate.Option) Comparator[string] {
	coll := collate.New(tag, opts...)

	return func(a, b string) Ordering {
		return OrderingOf(coll.CompareString(a, b))
	}
}
