package wire

import "errors"

// Decode and encode failures. Callers wrap these with position context,
// so match them with errors.Is.
var (
	ErrInvalidClass              = errors.New("invalid class")
	ErrInvalidRRType             = errors.New("invalid RR type")
	ErrInvalidQType              = errors.New("invalid qtype")
	ErrPointerForward            = errors.New("compression pointer does not point backward")
	ErrOutOfRange                = errors.New("offset out of range")
	ErrInvalidLabel              = errors.New("invalid label")
	ErrInvalidText               = errors.New("TXT data is not valid UTF-8")
	ErrUnsupportedLabelType      = errors.New("unsupported label type")
	ErrEmptyLabel                = errors.New("empty label")
	ErrLabelTooLong              = errors.New("label too long")
	ErrNameTooLong               = errors.New("name too long")
	ErrCountMismatch             = errors.New("section count does not match section length")
	ErrInvalidRDataLength        = errors.New("invalid rdata length")
	ErrMessageTooLarge           = errors.New("message exceeds maximum UDP size")
	ErrRecordEncodingUnsupported = errors.New("encoding resource records is not supported")
)
