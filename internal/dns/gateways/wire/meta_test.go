package wire

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

func TestMeta_RoundTripAllValues(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		got := packMeta(unpackMeta(uint16(v)))
		if got != uint16(v) {
			t.Fatalf("round trip of %016b produced %016b", v, got)
		}
	}
}

func TestMeta_RecursionDesiredOnly(t *testing.T) {
	m := unpackMeta(0b0000000100000000)
	assert.Equal(t, domain.Meta{RD: true}, m)

	out := make([]byte, 2)
	binary.BigEndian.PutUint16(out, packMeta(m))
	assert.Equal(t, []byte{0x01, 0x00}, out)
	assert.Equal(t, domain.QueryMeta, m)
}

func TestUnpackMeta_Fields(t *testing.T) {
	// QR=1 OPCODE=2 AA=1 TC=0 RD=1 RA=1 Z=5 RCODE=3
	m := unpackMeta(0b1_0010_1_0_1_1_101_0011)
	assert.True(t, m.QR)
	assert.Equal(t, domain.OpcodeStatus, m.Opcode)
	assert.True(t, m.AA)
	assert.False(t, m.TC)
	assert.True(t, m.RD)
	assert.True(t, m.RA)
	assert.Equal(t, uint8(5), m.Z)
	assert.Equal(t, domain.RCodeNameError, m.RCode)
}

func TestPackMeta_MasksOversizedFields(t *testing.T) {
	m := domain.Meta{Opcode: 0xFF, Z: 0xFF, RCode: 0xFF}
	assert.Equal(t, uint16(0b0_1111_0_0_0_0_111_1111), packMeta(m))
}
