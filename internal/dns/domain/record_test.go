package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeData stands in for an rrdata payload.
type fakeData struct {
	t    RRType
	text string
}

func (f fakeData) Type() RRType   { return f.t }
func (f fakeData) String() string { return f.text }

func TestResourceRecord_String(t *testing.T) {
	rr := ResourceRecord{
		Name:     NewName("example", "com"),
		Type:     RRTypeA,
		Class:    RRClassIN,
		TTL:      300,
		RDLength: 4,
		Data:     fakeData{RRTypeA, "93.184.216.34"},
	}
	assert.Equal(t, "example.com.\tA\tIN\tTTL: 300, RDLEN: 4\n93.184.216.34", rr.String())
}

func TestResourceRecord_String_UnknownTypeNoData(t *testing.T) {
	rr := ResourceRecord{Name: NewName(), Type: 99, Class: RRClassCH, TTL: 4294967295}
	assert.Equal(t, ".\t99\tCH\tTTL: 4294967295, RDLEN: 0\n", rr.String())
}
