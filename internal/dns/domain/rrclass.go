package domain

import "strconv"

// RRClass is the class field of a resource record. Questions may carry any
// 16-bit value; records are limited to the four classes below.
type RRClass uint16

// RFC 1035 section 3.2.4
const (
	RRClassIN RRClass = 1 // IN - Internet
	RRClassCS RRClass = 2 // CS - CSNET (obsolete)
	RRClassCH RRClass = 3 // CH - Chaos
	RRClassHS RRClass = 4 // HS - Hesiod
)

var rrClassNames = [...]string{
	RRClassIN: "IN",
	RRClassCS: "CS",
	RRClassCH: "CH",
	RRClassHS: "HS",
}

// IsValid reports whether c may appear in a resource record.
func (c RRClass) IsValid() bool {
	return c >= RRClassIN && c <= RRClassHS
}

// String returns the class mnemonic, or the decimal code for anything else.
func (c RRClass) String() string {
	if c.IsValid() {
		return rrClassNames[c]
	}
	return strconv.Itoa(int(c))
}
