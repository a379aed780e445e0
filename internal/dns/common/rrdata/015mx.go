package rrdata

import (
	"fmt"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// MX is a mail exchange with its preference (lower is preferred).
type MX struct {
	Preference uint16
	Exchange   domain.Name
}

func (MX) Type() domain.RRType { return domain.RRTypeMX }

func (m MX) String() string {
	return fmt.Sprintf("%d\t%s", m.Preference, m.Exchange)
}
