package wire

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// decodeName reads a possibly compressed domain name starting at offset and
// returns it with the offset of the first byte after the name in place.
//
// Pointers are followed iteratively. Each pointer must target an offset strictly
// below the start of the label run it ends, so every jump moves backward past
// data already read and decoding always terminates.
func decodeName(data []byte, offset int) (domain.Name, int, error) {
	name := domain.Name{}
	pos := offset
	floor := offset
	next := -1
	wireLen := 1 // terminating root label

	for {
		if pos < 0 || pos >= len(data) {
			return nil, 0, fmt.Errorf("%w: name byte at %d", ErrOutOfRange, pos)
		}
		b := data[pos]

		switch b & pointerMask {
		case 0x00:
			if b == 0 {
				if next < 0 {
					next = pos + 1
				}
				return name, next, nil
			}
			n := int(b)
			start, end := pos+1, pos+1+n
			if end > len(data) {
				return nil, 0, fmt.Errorf("%w: label of %d bytes at %d", ErrOutOfRange, n, pos)
			}
			label := data[start:end]
			if !utf8.Valid(label) {
				return nil, 0, fmt.Errorf("%w: not valid UTF-8 at offset %d", ErrInvalidLabel, pos)
			}
			wireLen += 1 + n
			if wireLen > maxNameLength {
				return nil, 0, fmt.Errorf("%w: exceeds %d bytes", ErrNameTooLong, maxNameLength)
			}
			name = append(name, string(label))
			pos = end

		case pointerMask:
			if pos+1 >= len(data) {
				return nil, 0, fmt.Errorf("%w: truncated pointer at %d", ErrOutOfRange, pos)
			}
			target := pointerOffset(data[pos], data[pos+1])
			if target >= floor {
				return nil, 0, fmt.Errorf("%w: pointer at %d targets %d", ErrPointerForward, pos, target)
			}
			if next < 0 {
				next = pos + 2
			}
			pos, floor = target, target

		default:
			return nil, 0, fmt.Errorf("%w: bits %02b at offset %d", ErrUnsupportedLabelType, b>>6, pos)
		}
	}
}

// decodeOwnerName reads the owner name of a resource record. The leading
// byte is either a pointer (the whole name is one jump) or the start of an
// in-place label sequence; the reserved 01 and 10 patterns are rejected.
func decodeOwnerName(data []byte, offset int) (domain.Name, int, error) {
	if offset >= len(data) {
		return nil, 0, fmt.Errorf("%w: owner name at %d", ErrOutOfRange, offset)
	}
	switch data[offset] & pointerMask {
	case 0x00, pointerMask:
		return decodeName(data, offset)
	default:
		return nil, 0, fmt.Errorf("%w: owner name bits %02b at offset %d",
			ErrUnsupportedLabelType, data[offset]>>6, offset)
	}
}

// validateName checks label and total length limits before encoding.
func validateName(name domain.Name) error {
	wireLen := 1
	for _, label := range name {
		if len(label) == 0 {
			return fmt.Errorf("%w in %q", ErrEmptyLabel, name.String())
		}
		if len(label) > maxLabelLength {
			return fmt.Errorf("%w: %s", ErrLabelTooLong, label)
		}
		if strings.IndexByte(label, '.') >= 0 {
			return fmt.Errorf("%w: %q contains a dot", ErrInvalidLabel, label)
		}
		wireLen += 1 + len(label)
	}
	if wireLen > maxNameLength {
		return fmt.Errorf("%w: %d bytes", ErrNameTooLong, wireLen)
	}
	return nil
}

// nameEncoder writes names into a message buffer, replacing any suffix
// already written earlier in the same message with a pointer to it.
// An encoder must not be shared between messages.
type nameEncoder struct {
	buf     *bytes.Buffer
	offsets map[string]int // dot-joined suffix -> offset of its first emission
}

func newNameEncoder(buf *bytes.Buffer) *nameEncoder {
	return &nameEncoder{
		buf:     buf,
		offsets: make(map[string]int),
	}
}

// encode appends name to the buffer.
func (e *nameEncoder) encode(name domain.Name) error {
	if err := validateName(name); err != nil {
		return err
	}
	for i, label := range name {
		suffix := name.Suffix(i)
		if off, ok := e.offsets[suffix]; ok {
			e.buf.WriteByte(pointerMask | byte(off>>8))
			e.buf.WriteByte(byte(off))
			return nil
		}
		if pos := e.buf.Len(); pos <= maxPointerOffset {
			e.offsets[suffix] = pos
		}
		e.buf.WriteByte(byte(len(label)))
		e.buf.WriteString(label)
	}
	e.buf.WriteByte(0)
	return nil
}
