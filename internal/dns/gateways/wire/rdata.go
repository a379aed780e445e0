package wire

import (
	"fmt"
	"unicode/utf8"

	"github.com/haukened/rr-dig/internal/dns/common/rrdata"
	"github.com/haukened/rr-dig/internal/dns/domain"
)

// decodeRData interprets the rdlength bytes at offset according to rrtype.
// The caller has already checked that offset+rdlength is inside data.
// Names inside the payload may point anywhere earlier in the message, so
// rdlength is not a boundary for name decoding.
func decodeRData(data []byte, rrtype domain.RRType, offset, rdlength int) (domain.RData, error) {
	end := offset + rdlength

	switch rrtype {
	case domain.RRTypeA: // 1
		if rdlength != 4 {
			return nil, fmt.Errorf("%w: A record with %d bytes", ErrInvalidRDataLength, rdlength)
		}
		var a rrdata.A
		copy(a.Addr[:], data[offset:end])
		return a, nil

	case domain.RRTypeNS: // 2
		host, _, err := decodeName(data, offset)
		if err != nil {
			return nil, err
		}
		return rrdata.NS{Host: host}, nil

	case domain.RRTypeCNAME: // 5
		target, _, err := decodeName(data, offset)
		if err != nil {
			return nil, err
		}
		return rrdata.CNAME{Target: target}, nil

	case domain.RRTypeSOA: // 6
		return decodeSOA(data, offset, end)

	case domain.RRTypePTR: // 12
		target, _, err := decodeName(data, offset)
		if err != nil {
			return nil, err
		}
		return rrdata.PTR{Target: target}, nil

	case domain.RRTypeMX: // 15
		pref, err := readUint16(data, offset)
		if err != nil {
			return nil, err
		}
		exchange, _, err := decodeName(data, offset+2)
		if err != nil {
			return nil, err
		}
		return rrdata.MX{Preference: pref, Exchange: exchange}, nil

	case domain.RRTypeTXT: // 16
		blob := data[offset:end]
		if !utf8.Valid(blob) {
			return nil, ErrInvalidText
		}
		txt := rrdata.TXT{Data: make([]byte, rdlength)}
		copy(txt.Data, blob)
		return txt, nil

	case domain.RRTypeAAAA: // 28
		if rdlength != 16 {
			return nil, fmt.Errorf("%w: AAAA record with %d bytes", ErrInvalidRDataLength, rdlength)
		}
		var aaaa rrdata.AAAA
		copy(aaaa.Addr[:], data[offset:end])
		return aaaa, nil

	default:
		return rrdata.Unknown{Code: rrtype}, nil
	}
}

// decodeSOA reads mname, rname and the 32-bit fields in order.
// minimum is read only when it lies inside the payload.
func decodeSOA(data []byte, offset, end int) (domain.RData, error) {
	mname, offset, err := decodeName(data, offset)
	if err != nil {
		return nil, fmt.Errorf("invalid SOA mname: %w", err)
	}
	rname, offset, err := decodeName(data, offset)
	if err != nil {
		return nil, fmt.Errorf("invalid SOA rname: %w", err)
	}

	var fields [4]uint32
	for i := range fields {
		fields[i], err = readUint32(data, offset)
		if err != nil {
			return nil, fmt.Errorf("SOA record missing integer fields: %w", err)
		}
		offset += 4
	}

	soa := rrdata.SOA{
		MName:   mname,
		RName:   rname,
		Serial:  fields[0],
		Refresh: fields[1],
		Retry:   fields[2],
		Expire:  fields[3],
	}
	if offset+4 <= end {
		soa.Minimum, _ = readUint32(data, offset)
	}
	return soa, nil
}
