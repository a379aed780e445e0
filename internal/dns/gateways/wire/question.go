package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// decodeQuestion reads one question entry: name, qtype, qclass.
// qtype must be a known record type or one of the query-only meta types.
func decodeQuestion(data []byte, offset int) (domain.Question, int, error) {
	name, offset, err := decodeName(data, offset)
	if err != nil {
		return domain.Question{}, 0, fmt.Errorf("failed to decode question name: %w", err)
	}
	rawType, err := readUint16(data, offset)
	if err != nil {
		return domain.Question{}, 0, err
	}
	qtype := domain.QType(rawType)
	if !qtype.IsValid() {
		return domain.Question{}, 0, fmt.Errorf("%w: %d", ErrInvalidQType, rawType)
	}
	offset += 2
	qclass, err := readUint16(data, offset)
	if err != nil {
		return domain.Question{}, 0, err
	}
	offset += 2

	return domain.Question{
		Name:  name,
		Type:  qtype,
		Class: domain.RRClass(qclass),
	}, offset, nil
}

// encodeQuestion appends q using the message-wide name encoder.
func encodeQuestion(buf *bytes.Buffer, names *nameEncoder, q domain.Question) error {
	if !q.Type.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidQType, uint16(q.Type))
	}
	if err := names.encode(q.Name); err != nil {
		return err
	}
	_ = binary.Write(buf, binary.BigEndian, uint16(q.Type))
	_ = binary.Write(buf, binary.BigEndian, uint16(q.Class))
	return nil
}
