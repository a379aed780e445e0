package domain

import "strings"

// Name is a domain name as an ordered list of labels, most specific first.
// The terminating root label is implicit; the root itself is an empty Name.
type Name []string

// NewName copies labels into a Name.
func NewName(labels ...string) Name {
	n := make(Name, len(labels))
	copy(n, labels)
	return n
}

// IsRoot reports whether n is the root name.
func (n Name) IsRoot() bool {
	return len(n) == 0
}

// Suffix returns the dot-joined labels starting at label i.
func (n Name) Suffix(i int) string {
	return strings.Join(n[i:], ".")
}

// String returns the fully qualified presentation form, e.g. "example.com.".
func (n Name) String() string {
	if n.IsRoot() {
		return "."
	}
	return strings.Join(n, ".") + "."
}

// Equal reports whether n and o have the same labels, ignoring ASCII case.
func (n Name) Equal(o Name) bool {
	if len(n) != len(o) {
		return false
	}
	for i := range n {
		if !strings.EqualFold(n[i], o[i]) {
			return false
		}
	}
	return true
}
