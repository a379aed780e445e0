package rrdata

import (
	"strconv"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// TXT holds the whole RDATA of a TXT record as one blob, length prefixes included.
// The decoder only accepts blobs that are valid UTF-8.
// TODO: split into RFC 1035 <character-string>s once TXT stops being decoded as a single blob.
type TXT struct {
	Data []byte
}

func (TXT) Type() domain.RRType { return domain.RRTypeTXT }

// String renders the blob as a quoted Go string.
func (t TXT) String() string {
	return strconv.Quote(string(t.Data))
}
