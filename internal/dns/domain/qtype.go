package domain

import (
	"fmt"
	"strings"
)

// QType is the type carried by a Question. It is either an ordinary RRType
// or one of the query-only meta types defined in RFC 1035 section 3.2.3.
type QType uint16

// Query-only QTYPE constants
const (
	QTypeAXFR  QType = 252 // AXFR - transfer of an entire zone
	QTypeMAILB QType = 253 // MAILB - mailbox-related records (MB, MG or MR)
	QTypeMAILA QType = 254 // MAILA - mail agent RRs (obsolete, see MX)
	QTypeANY   QType = 255 // ANY - all records
)

var metaQTypeNames = map[QType]string{
	QTypeAXFR:  "AXFR",
	QTypeMAILB: "MAILB",
	QTypeMAILA: "MAILA",
	QTypeANY:   "ANY",
}

// QTypeFromRRType lifts an ordinary RRType into a QType.
func QTypeFromRRType(t RRType) QType {
	return QType(t)
}

// IsMeta reports whether q is one of the query-only meta types.
func (q QType) IsMeta() bool {
	_, ok := metaQTypeNames[q]
	return ok
}

// IsValid returns true if q is a known RRType or a meta type.
func (q QType) IsValid() bool {
	return q.IsMeta() || RRType(q).IsValid()
}

// String returns the mnemonic of the QType.
func (q QType) String() string {
	if name, ok := metaQTypeNames[q]; ok {
		return name
	}
	return RRType(q).String()
}

// ParseQType converts a query type token (case-insensitive) to its QType value.
// Ordinary record types are tried first, then the meta types.
func ParseQType(s string) (QType, error) {
	if t, err := ParseRRType(s); err == nil {
		return QTypeFromRRType(t), nil
	}
	token := strings.ToUpper(strings.TrimSpace(s))
	for q, name := range metaQTypeNames {
		if name == token {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown query type: %q", s)
}
