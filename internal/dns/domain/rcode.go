package domain

// RCode represents a DNS response code indicating the result of a query.
// Only the low 4 bits are meaningful in the header.
type RCode uint8

// Response code constants (RFC 1035 section 4.1.1). Codes 6 through 15
// are reserved for future use.
const (
	RCodeNoError     RCode = 0
	RCodeFormatError RCode = 1
	RCodeServFail    RCode = 2
	RCodeNameError   RCode = 3
	RCodeNotImp      RCode = 4
	RCodeRefused     RCode = 5
)

// IsReserved reports whether the code falls in the reserved 6-15 range.
func (r RCode) IsReserved() bool {
	return r > RCodeRefused
}

// String returns the textual representation of the RCode.
func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NoError"
	case RCodeFormatError:
		return "FormatError"
	case RCodeServFail:
		return "ServFail"
	case RCodeNameError:
		return "NameError"
	case RCodeNotImp:
		return "NotImp"
	case RCodeRefused:
		return "Refused"
	default:
		return "Reserved"
	}
}
