package rrdata

import "github.com/haukened/rr-dig/internal/dns/domain"

// PTR points to another location in the domain name space.
type PTR struct {
	Target domain.Name
}

func (PTR) Type() domain.RRType { return domain.RRTypePTR }

func (p PTR) String() string { return p.Target.String() }
