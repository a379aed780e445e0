package domain

import "fmt"

// RData is the typed payload of a resource record.
// Implementations live in the rrdata package.
type RData interface {
	// Type returns the record type the payload was decoded for.
	Type() RRType
	// String returns the presentation form of the payload.
	String() string
}

// ResourceRecord is one entry of the answer, authority or additional section.
// TTL is unsigned, see RFC 2181 section 8.
type ResourceRecord struct {
	Name     Name
	Type     RRType
	Class    RRClass
	TTL      uint32
	RDLength uint16
	Data     RData
}

// String renders the record envelope on one line and its payload on the next.
func (rr ResourceRecord) String() string {
	data := ""
	if rr.Data != nil {
		data = rr.Data.String()
	}
	return fmt.Sprintf("%s\t%s\t%s\tTTL: %d, RDLEN: %d\n%s",
		rr.Name, rr.Type, rr.Class, rr.TTL, rr.RDLength, data)
}
