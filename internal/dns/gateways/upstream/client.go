package upstream

import (
	"context"
	"fmt"
	"net"

	"github.com/haukened/rr-dig/internal/dns/common/log"
	"github.com/haukened/rr-dig/internal/dns/domain"
	"github.com/haukened/rr-dig/internal/dns/gateways/wire"
)

// Error message constants for consistent error handling
const (
	errNoServerProvided = "no DNS server provided"
	errCodecRequired    = "DNS codec is required"
	errFailedToConnect  = "failed to connect: %w"
	errEncodeFailed     = "encode failed: %w"
	errWriteFailed      = "write failed: %w"
	errReadFailed       = "read failed: %w"
	errDecodeFailed     = "decode failed: %w"
	errIDMismatch       = "reply id %d does not match query id %d"
	errQuestionMismatch = "reply question %s does not match query question %s"
)

// Client sends a single query to one DNS server over UDP and returns its reply.
// There is no retry and no implicit timeout; the caller's context bounds the exchange.
type Client struct {
	server string
	codec  wire.DNSCodec
	dial   DialFunc
	logger log.Logger
}

// DialFunc defines a function type for establishing a network connection.
// It takes a context for cancellation, the network type (e.g., "udp"),
// and the address to connect to, returning a net.Conn and an error if any occurs.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Options configures a Client.
type Options struct {
	// required parameters
	Server string
	Codec  wire.DNSCodec
	// options to inject for testing purposes
	Dial   DialFunc
	Logger log.Logger
}

// NewClient creates a client for opts.Server ("ip:port").
// Returns an error if the server is empty or the codec is not provided.
func NewClient(opts Options) (*Client, error) {
	if opts.Server == "" {
		return nil, fmt.Errorf(errNoServerProvided)
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf(errCodecRequired)
	}
	if opts.Dial == nil {
		opts.Dial = (&net.Dialer{}).DialContext
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Client{
		server: opts.Server,
		codec:  opts.Codec,
		dial:   opts.Dial,
		logger: opts.Logger,
	}, nil
}

// Server returns the address the client sends to.
func (c *Client) Server() string {
	return c.server
}

// Exchange encodes query, sends it, and decodes the reply.
// The reply must carry the query's ID and, when it echoes a question, the query's name and type.
func (c *Client) Exchange(ctx context.Context, query domain.Message) (domain.Message, []byte, error) {
	packet, err := c.codec.EncodeQuery(query)
	if err != nil {
		return domain.Message{}, nil, fmt.Errorf(errEncodeFailed, err)
	}

	raw, err := c.ExchangeRaw(ctx, packet)
	if err != nil {
		return domain.Message{}, nil, err
	}

	reply, err := c.codec.DecodeResponse(raw)
	if err != nil {
		return domain.Message{}, raw, fmt.Errorf(errDecodeFailed, err)
	}
	if reply.ID != query.ID {
		return domain.Message{}, raw, fmt.Errorf(errIDMismatch, reply.ID, query.ID)
	}
	if len(reply.Questions) > 0 && len(query.Questions) > 0 {
		got, want := reply.Questions[0], query.Questions[0]
		if !got.Name.Equal(want.Name) || got.Type != want.Type {
			return domain.Message{}, raw, fmt.Errorf(errQuestionMismatch, got.Name, want.Name)
		}
	}
	return reply, raw, nil
}

// ExchangeRaw writes packet to the server and returns the first datagram read back.
// Replies longer than domain.MaxUDPMessageSize are truncated to that size.
func (c *Client) ExchangeRaw(ctx context.Context, packet []byte) ([]byte, error) {
	conn, err := c.dial(ctx, "udp", c.server)
	if err != nil {
		return nil, fmt.Errorf(errFailedToConnect, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf(errFailedToConnect, err)
		}
	}

	type result struct {
		data []byte
		err  error
	}

	resultChan := make(chan result, 1)

	go func() {
		if _, err := conn.Write(packet); err != nil {
			resultChan <- result{err: fmt.Errorf(errWriteFailed, err)}
			return
		}
		c.logger.Debug(map[string]any{
			"server": c.server,
			"bytes":  len(packet),
		}, "Query sent")

		buffer := make([]byte, domain.MaxUDPMessageSize)
		n, err := conn.Read(buffer)
		if err != nil {
			resultChan <- result{err: fmt.Errorf(errReadFailed, err)}
			return
		}
		c.logger.Debug(map[string]any{
			"server": c.server,
			"bytes":  n,
		}, "Reply received")
		resultChan <- result{data: buffer[:n]}
	}()

	select {
	case res := <-resultChan:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
