package rrdata

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// AAAA is an IPv6 host address.
type AAAA struct {
	Addr [16]byte
}

func (AAAA) Type() domain.RRType { return domain.RRTypeAAAA }

// Quibbles splits the address into its eight 16-bit groups.
func (a AAAA) Quibbles() [8]uint16 {
	var q [8]uint16
	for i := range q {
		q[i] = binary.BigEndian.Uint16(a.Addr[i*2:])
	}
	return q
}

// longestZeroRun returns the bounds [lo, hi) of the longest run of at least
// two zero quibbles. Ties go to the leftmost run. ok is false when no run qualifies.
func longestZeroRun(q [8]uint16) (lo, hi int, ok bool) {
	bestLen := 1
	start := -1
	for i := 0; i <= len(q); i++ {
		if i < len(q) && q[i] == 0 {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if i-start > bestLen {
				lo, hi, bestLen, ok = start, i, i-start, true
			}
			start = -1
		}
	}
	return lo, hi, ok
}

func joinQuibbles(q []uint16) string {
	parts := make([]string, len(q))
	for i, v := range q {
		parts[i] = strconv.FormatUint(uint64(v), 16)
	}
	return strings.Join(parts, ":")
}

// String renders the address in lowercase hex, collapsing the longest
// run of zero quibbles to "::".
func (a AAAA) String() string {
	q := a.Quibbles()
	lo, hi, ok := longestZeroRun(q)
	if !ok {
		return joinQuibbles(q[:])
	}
	return joinQuibbles(q[:lo]) + "::" + joinQuibbles(q[hi:])
}
