package wire

import "github.com/haukened/rr-dig/internal/dns/domain"

// unpackMeta splits the header meta word into its fields.
func unpackMeta(v uint16) domain.Meta {
	return domain.Meta{
		QR:     v>>15 != 0,
		Opcode: domain.Opcode(v>>11) & 0xF,
		AA:     (v>>10)&1 != 0,
		TC:     (v>>9)&1 != 0,
		RD:     (v>>8)&1 != 0,
		RA:     (v>>7)&1 != 0,
		Z:      uint8(v>>4) & 0x7,
		RCode:  domain.RCode(v & 0xF),
	}
}

// packMeta is the inverse of unpackMeta. Out-of-range field values are masked.
func packMeta(m domain.Meta) uint16 {
	var v uint16
	if m.QR {
		v |= 1 << 15
	}
	v |= uint16(m.Opcode&0xF) << 11
	if m.AA {
		v |= 1 << 10
	}
	if m.TC {
		v |= 1 << 9
	}
	if m.RD {
		v |= 1 << 8
	}
	if m.RA {
		v |= 1 << 7
	}
	v |= uint16(m.Z&0x7) << 4
	v |= uint16(m.RCode & 0xF)
	return v
}
