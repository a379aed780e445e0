package wire

import (
	"fmt"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// decodeRecord reads one resource record and returns the offset just past its RDATA.
func decodeRecord(data []byte, offset int) (domain.ResourceRecord, int, error) {
	name, offset, err := decodeOwnerName(data, offset)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("failed to decode record name: %w", err)
	}

	if offset+10 > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: truncated record after name", ErrOutOfRange)
	}
	rawType := byteCombine(data[offset], data[offset+1])
	rawClass := byteCombine(data[offset+2], data[offset+3])
	ttl := uint32(byteCombine(data[offset+4], data[offset+5]))<<16 | uint32(byteCombine(data[offset+6], data[offset+7]))
	rdLen := byteCombine(data[offset+8], data[offset+9])
	offset += 10

	rrtype := domain.RRType(rawType)
	if domain.QType(rawType).IsMeta() {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: query-only type %d in record", ErrInvalidRRType, rawType)
	}
	class := domain.RRClass(rawClass)
	if !class.IsValid() {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: %d", ErrInvalidClass, rawClass)
	}
	if offset+int(rdLen) > len(data) {
		return domain.ResourceRecord{}, 0, fmt.Errorf("%w: truncated rdata", ErrOutOfRange)
	}

	rdata, err := decodeRData(data, rrtype, offset, int(rdLen))
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("failed to decode %s rdata: %w", rrtype, err)
	}

	return domain.ResourceRecord{
		Name:     name,
		Type:     rrtype,
		Class:    class,
		TTL:      ttl,
		RDLength: rdLen,
		Data:     rdata,
	}, offset + int(rdLen), nil
}
