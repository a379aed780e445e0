package rrdata

import "github.com/haukened/rr-dig/internal/dns/domain"

// CNAME is the canonical name for an alias.
type CNAME struct {
	Target domain.Name
}

func (CNAME) Type() domain.RRType { return domain.RRTypeCNAME }

func (c CNAME) String() string { return c.Target.String() }
