// Package wire encodes and decodes DNS messages in the RFC 1035 wire format.
package wire

import "github.com/haukened/rr-dig/internal/dns/domain"

// DNSCodec converts between domain messages and wire bytes.
// Implementations hold no per-call state and are safe for concurrent use.
type DNSCodec interface {
	// EncodeQuery serializes an outgoing query. Messages carrying
	// resource records are rejected.
	EncodeQuery(msg domain.Message) ([]byte, error)

	// DecodeResponse parses a received message. On failure no partial
	// message is returned.
	DecodeResponse(data []byte) (domain.Message, error)
}
