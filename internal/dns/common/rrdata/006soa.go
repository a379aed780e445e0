package rrdata

import (
	"fmt"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// SOA marks the start of a zone of authority.
type SOA struct {
	MName   domain.Name // primary name server for the zone
	RName   domain.Name // mailbox of the person responsible, first label is the local part
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (SOA) Type() domain.RRType { return domain.RRTypeSOA }

// String renders all fields tab-separated in wire order.
func (s SOA) String() string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d",
		s.MName, s.RName, s.Serial, s.Refresh, s.Retry, s.Expire, s.Minimum)
}
