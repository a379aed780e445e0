package domain

import (
	"fmt"
	"strconv"
)

// Opcode is the 4-bit kind of query carried in the header.
type Opcode uint8

// Opcode values (RFC 1035 section 4.1.1). 3 through 15 are reserved.
const (
	OpcodeQuery  Opcode = 0 // standard query
	OpcodeIQuery Opcode = 1 // inverse query
	OpcodeStatus Opcode = 2 // server status request
)

// String returns the opcode name, or its decimal value when reserved.
func (o Opcode) String() string {
	switch o {
	case OpcodeQuery:
		return "Query"
	case OpcodeIQuery:
		return "IQuery"
	case OpcodeStatus:
		return "Status"
	default:
		return strconv.Itoa(int(o))
	}
}

// Meta holds the second 16-bit word of the DNS header:
// QR(1) OPCODE(4) AA(1) TC(1) RD(1) RA(1) Z(3) RCODE(4), most significant bit first.
type Meta struct {
	QR     bool   // false for a query, true for a response
	Opcode Opcode // 4 bits
	AA     bool   // authoritative answer
	TC     bool   // truncated
	RD     bool   // recursion desired
	RA     bool   // recursion available
	Z      uint8  // 3 bits, reserved
	RCode  RCode  // 4 bits
}

// QueryMeta is the meta word of an outgoing query: standard query, RD set.
var QueryMeta = Meta{Opcode: OpcodeQuery, RD: true}

func (m Meta) kind() string {
	if m.QR {
		return "Response"
	}
	return "Query"
}

// String renders the meta word as two lines: kind and opcode, then the flags.
func (m Meta) String() string {
	return fmt.Sprintf("QR: %s; Opcode: %s\nFLAGS: AA %t; TC %t; RD %t; RA %t; Z %d; %s",
		m.kind(), m.Opcode, m.AA, m.TC, m.RD, m.RA, m.Z, m.RCode)
}
