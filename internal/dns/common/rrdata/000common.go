// Package rrdata holds the typed RDATA payloads a reply can carry and
// their presentation form. Values are produced by the wire codec and are
// never mutated afterwards.
package rrdata

import (
	"github.com/haukened/rr-dig/internal/dns/domain"
)

// compile-time checks that every payload satisfies domain.RData
var (
	_ domain.RData = A{}
	_ domain.RData = NS{}
	_ domain.RData = CNAME{}
	_ domain.RData = SOA{}
	_ domain.RData = PTR{}
	_ domain.RData = MX{}
	_ domain.RData = TXT{}
	_ domain.RData = AAAA{}
	_ domain.RData = Unknown{}
)
