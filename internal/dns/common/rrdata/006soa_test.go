package rrdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

func TestSOA_String(t *testing.T) {
	soa := SOA{
		MName:   domain.NewName("ns", "example", "com"),
		RName:   domain.NewName("hostmaster", "example", "com"),
		Serial:  20240601,
		Refresh: 3600,
		Retry:   600,
		Expire:  86400,
		Minimum: 300,
	}
	assert.Equal(t, "ns.example.com.\thostmaster.example.com.\t20240601\t3600\t600\t86400\t300", soa.String())
	assert.Equal(t, domain.RRTypeSOA, soa.Type())
}
