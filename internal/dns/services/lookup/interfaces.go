package lookup

import (
	"context"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// Upstream performs the network exchange with a single DNS server.
type Upstream interface {
	// Exchange sends query and returns the decoded reply with its raw bytes.
	Exchange(ctx context.Context, query domain.Message) (domain.Message, []byte, error)

	// ExchangeRaw sends an encoded packet and returns the reply undecoded.
	ExchangeRaw(ctx context.Context, packet []byte) ([]byte, error)

	// Server returns the address queries are sent to.
	Server() string
}

// QueryEncoder serializes a query message into wire format.
type QueryEncoder interface {
	EncodeQuery(msg domain.Message) ([]byte, error)
}
