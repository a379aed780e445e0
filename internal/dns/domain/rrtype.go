package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RRType represents a DNS resource record type (e.g. A, NS, MX).
// See RFC 1035 section 3.2.2 and RFC 3596 for AAAA.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA     RRType = 1  // A - host address
	RRTypeNS    RRType = 2  // NS - authoritative name server
	RRTypeMD    RRType = 3  // MD - mail destination (obsolete, use MX)
	RRTypeMF    RRType = 4  // MF - mail forwarder (obsolete, use MX)
	RRTypeCNAME RRType = 5  // CNAME - canonical name for an alias
	RRTypeSOA   RRType = 6  // SOA - start of a zone of authority
	RRTypeMB    RRType = 7  // MB - mailbox domain name (experimental)
	RRTypeMG    RRType = 8  // MG - mail group member (experimental)
	RRTypeMR    RRType = 9  // MR - mail rename domain name (experimental)
	RRTypeNULL  RRType = 10 // NULL - null RR (experimental)
	RRTypeWKS   RRType = 11 // WKS - well known service description
	RRTypePTR   RRType = 12 // PTR - domain name pointer
	RRTypeHINFO RRType = 13 // HINFO - host information
	RRTypeMINFO RRType = 14 // MINFO - mailbox or mail list information
	RRTypeMX    RRType = 15 // MX - mail exchange
	RRTypeTXT   RRType = 16 // TXT - text strings
	RRTypeAAAA  RRType = 28 // AAAA - IPv6 address
)

var rrTypeNames = map[RRType]string{
	RRTypeA:     "A",
	RRTypeNS:    "NS",
	RRTypeMD:    "MD",
	RRTypeMF:    "MF",
	RRTypeCNAME: "CNAME",
	RRTypeSOA:   "SOA",
	RRTypeMB:    "MB",
	RRTypeMG:    "MG",
	RRTypeMR:    "MR",
	RRTypeNULL:  "NULL",
	RRTypeWKS:   "WKS",
	RRTypePTR:   "PTR",
	RRTypeHINFO: "HINFO",
	RRTypeMINFO: "MINFO",
	RRTypeMX:    "MX",
	RRTypeTXT:   "TXT",
	RRTypeAAAA:  "AAAA",
}

var rrTypeValues = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for t, name := range rrTypeNames {
		m[name] = t
	}
	return m
}()

// IsValid returns true if the RRType is one of the known types.
func (t RRType) IsValid() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the mnemonic of the RRType.
// Unknown types render as their decimal code.
func (t RRType) String() string {
	if name, ok := rrTypeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// ParseRRType converts a record type token (case-insensitive) to its RRType value.
func ParseRRType(s string) (RRType, error) {
	if t, ok := rrTypeValues[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown RR type: %q", s)
}
