package rrdata

import (
	"strconv"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// Unknown stands in for any record type without payload interpretation.
// Only the numeric type code is retained.
type Unknown struct {
	Code domain.RRType
}

func (u Unknown) Type() domain.RRType { return u.Code }

func (u Unknown) String() string {
	return strconv.Itoa(int(u.Code))
}
