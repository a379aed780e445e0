package rrdata

import (
	"strconv"
	"strings"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// A is an IPv4 host address.
type A struct {
	Addr [4]byte
}

func (A) Type() domain.RRType { return domain.RRTypeA }

// String renders the address in dotted-decimal form.
func (a A) String() string {
	parts := make([]string, len(a.Addr))
	for i, b := range a.Addr {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ".")
}
