package sortable

// String is a sortable wrapper for string using byte-wise ordering. For
// human-facing ordering see compare.NaturalStrings and compare.Collated.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
