// Package lookup runs a single DNS query: it normalizes the request, builds
// the query message, exchanges it with the upstream server and times the round trip.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haukened/rr-dig/internal/dns/common/clock"
	"github.com/haukened/rr-dig/internal/dns/common/log"
	"github.com/haukened/rr-dig/internal/dns/common/utils"
	"github.com/haukened/rr-dig/internal/dns/domain"
)

var (
	ErrUpstreamRequired = errors.New("upstream is required")
	ErrEncoderRequired  = errors.New("query encoder is required")
)

// Request describes what to look up.
type Request struct {
	Name  string // user supplied name, IDNA and trailing dot allowed
	QType string // QTYPE token such as "A" or "MX"
	Raw   bool   // skip decoding and return only the reply bytes
}

// Result is the outcome of one lookup.
type Result struct {
	Query    domain.Message
	Response domain.Message // zero value in raw mode
	Raw      []byte
	Server   string
	RTT      time.Duration
}

type Service struct {
	upstream Upstream
	encoder  QueryEncoder
	clock    clock.Clock
	logger   log.Logger
	newQuery func(domain.Name, domain.QType) (domain.Message, error)
}

type Options struct {
	Upstream Upstream
	Encoder  QueryEncoder
	Clock    clock.Clock
	Logger   log.Logger
	// NewQuery builds the query message; defaults to domain.NewQuery.
	NewQuery func(domain.Name, domain.QType) (domain.Message, error)
}

func NewService(opts Options) (*Service, error) {
	if opts.Upstream == nil {
		return nil, ErrUpstreamRequired
	}
	if opts.Encoder == nil {
		return nil, ErrEncoderRequired
	}
	if opts.Clock == nil {
		opts.Clock = &clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	if opts.NewQuery == nil {
		opts.NewQuery = domain.NewQuery
	}
	return &Service{
		upstream: opts.Upstream,
		encoder:  opts.Encoder,
		clock:    opts.Clock,
		logger:   opts.Logger,
		newQuery: opts.NewQuery,
	}, nil
}

// Lookup resolves req against the configured server.
func (s *Service) Lookup(ctx context.Context, req Request) (Result, error) {
	name, err := utils.ParseName(req.Name)
	if err != nil {
		return Result{}, err
	}
	qtype, err := domain.ParseQType(req.QType)
	if err != nil {
		return Result{}, err
	}

	query, err := s.newQuery(name, qtype)
	if err != nil {
		return Result{}, err
	}
	res := Result{Query: query, Server: s.upstream.Server()}
	fields := map[string]any{
		"name":   name.String(),
		"qtype":  qtype.String(),
		"server": res.Server,
		"id":     query.ID,
	}
	s.logger.Debug(fields, "Starting lookup")

	start := s.clock.Now()
	if req.Raw {
		packet, err := s.encoder.EncodeQuery(query)
		if err != nil {
			s.logger.Error(withErr(fields, err), "Failed to encode query")
			return Result{}, fmt.Errorf("encode failed: %w", err)
		}
		res.Raw, err = s.upstream.ExchangeRaw(ctx, packet)
		res.RTT = clock.Since(s.clock, start)
		if err != nil {
			s.logger.Error(withErr(fields, err), "Exchange failed")
			return Result{}, err
		}
		return res, nil
	}

	res.Response, res.Raw, err = s.upstream.Exchange(ctx, query)
	res.RTT = clock.Since(s.clock, start)
	if err != nil {
		s.logger.Error(withErr(fields, err), "Exchange failed")
		return Result{}, err
	}

	fields["rcode"] = res.Response.Meta.RCode.String()
	fields["answers"] = len(res.Response.Answers)
	fields["rtt"] = res.RTT.String()
	s.logger.Debug(fields, "Lookup complete")
	return res, nil
}

func withErr(fields map[string]any, err error) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err
	return out
}
