package polygon

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"market_gateway/internal/feature/marketdata/domain"
	"market_gateway/internal/feature/marketdata/usecase"
	"market_gateway/internal/platform/externalapi/polygon/dto"
)

// PolygonMarket is the MarketRepository backed by the Polygon REST API.
type PolygonMarket struct {
	cfg    Config
	client *http.Client
	errors ErrorTable
}

// Compile-time check that PolygonMarket implements usecase.MarketRepository.
var _ usecase.MarketRepository = (*PolygonMarket)(nil)

// Option configures a PolygonMarket.
type Option func(*PolygonMarket)

// WithErrorTable replaces the recognized upstream failure table.
func WithErrorTable(t ErrorTable) Option {
	return func(m *PolygonMarket) { m.errors = t }
}

// NewPolygonMarket creates a PolygonMarket with the given config and HTTP client.
func NewPolygonMarket(cfg Config, client *http.Client, opts ...Option) *PolygonMarket {
	m := &PolygonMarket{cfg: cfg, client: client, errors: DefaultErrorTable()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// call describes one upstream request and how to judge its response.
type call struct {
	path       string            // escaped path below the base URL
	query      url.Values        // parameters other than the API key
	identifier string            // instrument named in not-found errors
	vars       map[string]string // request values that may appear inside upstream messages

	// emptyDetail, when set, turns an OK response without results into a NotFoundError.
	emptyDetail string
	// statusOptional accepts a response without a status field as OK.
	statusOptional bool
}

// get performs c and decodes the body into out once the response is judged a success.
func (m *PolygonMarket) get(ctx context.Context, c call, out any) error {
	endpoint := m.cfg.BaseURL + c.path

	q := url.Values{}
	for k, v := range c.query {
		q[k] = v
	}
	q.Set("apiKey", m.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return &domain.UpstreamTransportError{Phase: domain.PhaseConnect, Endpoint: endpoint, Err: err}
	}

	res, err := m.client.Do(req)
	if err != nil {
		// *url.Error embeds the full URL including the API key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return &domain.UpstreamTransportError{Phase: domain.PhaseConnect, Endpoint: endpoint, Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &domain.UpstreamTransportError{Phase: domain.PhaseConnect, Endpoint: endpoint, Err: err}
	}

	var env dto.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &domain.UpstreamTransportError{Phase: domain.PhaseDecode, Endpoint: endpoint, Err: err}
	}
	if err := m.classify(c, endpoint, body, env); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.UpstreamTransportError{Phase: domain.PhaseDecode, Endpoint: endpoint, Err: err}
	}
	return nil
}

// classify returns nil for a success, or the typed failure the response stands for.
func (m *PolygonMarket) classify(c call, endpoint string, body []byte, env dto.Envelope) error {
	if c.statusOptional && !hasField(body, "status") {
		return nil
	}

	if env.Status == StatusOK {
		if c.emptyDetail != "" && env.ResultsCount == 0 && len(env.Results) == 0 {
			return &domain.NotFoundError{Identifier: c.identifier, Detail: c.emptyDetail}
		}
		return nil
	}

	// ERROR responses carry the text in "error", the others in "message".
	msg := env.Error
	if msg == "" {
		msg = env.Message
	}
	if rule, ok := m.errors.Lookup(env.Status, msg, c.vars); ok {
		return rule.err(c.identifier)
	}

	return &domain.UnrecognizedUpstreamError{
		Endpoint: endpoint,
		Status:   env.Status,
		Message:  env.Message,
		Detail:   env.Error,
	}
}

// hasField reports whether the top-level JSON object in body has key.
func hasField(body []byte, key string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	_, ok := fields[key]
	return ok
}
