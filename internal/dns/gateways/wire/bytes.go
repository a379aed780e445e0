package wire

import (
	"encoding/binary"
	"fmt"
)

const (
	headerSize = 12

	// pointerMask selects the two high bits of a length byte.
	pointerMask = 0xC0
	// maxPointerOffset is the largest offset a 14-bit pointer can address.
	maxPointerOffset = 0x3FFF
	maxLabelLength   = 63
	maxNameLength    = 255
)

// byteCombine joins two bytes into a big-endian 16-bit value.
func byteCombine(a, b byte) uint16 {
	return uint16(a)<<8 | uint16(b)
}

// pointerOffset extracts the 14-bit target of a compression pointer.
func pointerOffset(a, b byte) int {
	return int(byteCombine(a, b) & maxPointerOffset)
}

// readUint16 reads a big-endian uint16 at offset.
func readUint16(data []byte, offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(data) {
		return 0, fmt.Errorf("%w: need 2 bytes at %d, have %d", ErrOutOfRange, offset, len(data))
	}
	return binary.BigEndian.Uint16(data[offset:]), nil
}

// readUint32 reads a big-endian uint32 at offset.
func readUint32(data []byte, offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, fmt.Errorf("%w: need 4 bytes at %d, have %d", ErrOutOfRange, offset, len(data))
	}
	return binary.BigEndian.Uint32(data[offset:]), nil
}
