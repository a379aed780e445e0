package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-dig/internal/dns/common/log"
	"github.com/haukened/rr-dig/internal/dns/domain"
)

// udpCodec implements the DNSCodec interface for classic DNS over UDP messages.
type udpCodec struct {
	logger log.Logger
}

// NewUDPCodec creates and returns a new instance of udpCodec using the provided logger.
// The logger is used for debug tracing within the codec.
func NewUDPCodec(logger log.Logger) *udpCodec {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &udpCodec{
		logger: logger,
	}
}

// EncodeQuery serializes a query message: header, then each question with
// name compression shared across the whole message.
func (c *udpCodec) EncodeQuery(msg domain.Message) ([]byte, error) {
	if !msg.CountsMatch() {
		return nil, fmt.Errorf("%w: qd=%d/%d an=%d/%d ns=%d/%d ar=%d/%d", ErrCountMismatch,
			msg.QDCount, len(msg.Questions), msg.ANCount, len(msg.Answers),
			msg.NSCount, len(msg.Authority), msg.ARCount, len(msg.Additional))
	}
	if len(msg.Answers)+len(msg.Authority)+len(msg.Additional) > 0 {
		return nil, ErrRecordEncodingUnsupported
	}

	var buf bytes.Buffer

	// Header
	_ = binary.Write(&buf, binary.BigEndian, msg.ID)
	_ = binary.Write(&buf, binary.BigEndian, packMeta(msg.Meta))
	_ = binary.Write(&buf, binary.BigEndian, msg.QDCount)
	_ = binary.Write(&buf, binary.BigEndian, msg.ANCount)
	_ = binary.Write(&buf, binary.BigEndian, msg.NSCount)
	_ = binary.Write(&buf, binary.BigEndian, msg.ARCount)

	names := newNameEncoder(&buf)
	for i, q := range msg.Questions {
		if err := encodeQuestion(&buf, names, q); err != nil {
			return nil, fmt.Errorf("failed to encode question %d: %w", i, err)
		}
	}

	if buf.Len() > domain.MaxUDPMessageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, buf.Len())
	}

	c.logger.Debug(map[string]any{
		"step": "final_packet",
		"id":   msg.ID,
		"qd":   msg.QDCount,
		"size": buf.Len(),
		"raw":  fmt.Sprintf("%x", buf.Bytes()),
	}, "Encoded DNS query")

	return buf.Bytes(), nil
}

// DecodeResponse parses the header, then as many questions and records as the
// header counts announce, each stage starting where the previous one ended.
func (c *udpCodec) DecodeResponse(data []byte) (domain.Message, error) {
	if len(data) < headerSize {
		return domain.Message{}, fmt.Errorf("%w: message of %d bytes is shorter than the header", ErrOutOfRange, len(data))
	}

	msg := domain.Message{
		ID:      byteCombine(data[0], data[1]),
		Meta:    unpackMeta(byteCombine(data[2], data[3])),
		QDCount: byteCombine(data[4], data[5]),
		ANCount: byteCombine(data[6], data[7]),
		NSCount: byteCombine(data[8], data[9]),
		ARCount: byteCombine(data[10], data[11]),
	}

	c.logger.Debug(map[string]any{
		"step":  "header_read",
		"id":    msg.ID,
		"rcode": msg.Meta.RCode.String(),
		"qd":    msg.QDCount,
		"an":    msg.ANCount,
		"ns":    msg.NSCount,
		"ar":    msg.ARCount,
	}, "Read DNS message header")

	offset := headerSize
	var questions []domain.Question
	for i := 0; i < int(msg.QDCount); i++ {
		q, next, err := decodeQuestion(data, offset)
		if err != nil {
			return domain.Message{}, fmt.Errorf("failed to parse question %d: %w", i, err)
		}
		questions = append(questions, q)
		offset = next
	}

	answers, offset, err := c.decodeSection(data, offset, msg.ANCount, "answer")
	if err != nil {
		return domain.Message{}, err
	}
	authority, offset, err := c.decodeSection(data, offset, msg.NSCount, "authority")
	if err != nil {
		return domain.Message{}, err
	}
	additional, offset, err := c.decodeSection(data, offset, msg.ARCount, "additional")
	if err != nil {
		return domain.Message{}, err
	}

	if offset != len(data) {
		c.logger.Debug(map[string]any{
			"step":     "trailing_bytes",
			"consumed": offset,
			"size":     len(data),
		}, "Ignoring bytes after the last section")
	}

	msg.Questions = questions
	msg.Answers = answers
	msg.Authority = authority
	msg.Additional = additional
	return msg, nil
}

// decodeSection reads count resource records starting at offset.
func (c *udpCodec) decodeSection(data []byte, offset int, count uint16, section string) ([]domain.ResourceRecord, int, error) {
	var records []domain.ResourceRecord
	for i := 0; i < int(count); i++ {
		rr, next, err := decodeRecord(data, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse %s record %d: %w", section, i, err)
		}
		c.logger.Debug(map[string]any{
			"step":    "record_read",
			"section": section,
			"name":    rr.Name.String(),
			"type":    rr.Type.String(),
			"ttl":     rr.TTL,
			"rdlen":   rr.RDLength,
		}, "Read resource record")
		records = append(records, rr)
		offset = next
	}
	return records, offset, nil
}

var _ DNSCodec = &udpCodec{}
