package bus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPBus forwards insights to downstream tool endpoints as JSON POSTs.
// Delivery is best effort: the first failure is returned for logging, but
// remaining endpoints are still attempted.
type HTTPBus struct {
	endpoints []string
	http      *http.Client
}

// HTTPBusOption configures an HTTPBus.
type HTTPBusOption func(*HTTPBus)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) HTTPBusOption {
	return func(b *HTTPBus) {
		b.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(hc *http.Client) HTTPBusOption {
	return func(b *HTTPBus) {
		b.http = hc
	}
}

// NewHTTPBus creates an HTTPBus posting to the given endpoint URLs.
func NewHTTPBus(endpoints []string, opts ...HTTPBusOption) *HTTPBus {
	b := &HTTPBus{
		endpoints: endpoints,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ShareInsight posts the insight to every endpoint.
func (b *HTTPBus) ShareInsight(ctx context.Context, sourceID string, insight Insight) error {
	payload, err := json.Marshal(Message{SourceID: sourceID, Insight: insight})
	if err != nil {
		return fmt.Errorf("bus: marshal insight: %w", err)
	}

	var firstErr error
	for _, endpoint := range b.endpoints {
		if err := b.post(ctx, endpoint, payload); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (b *HTTPBus) post(ctx context.Context, endpoint string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("bus: build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.http.Do(req)
	if err != nil {
		return fmt.Errorf("bus: post to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("bus: %s returned status %d", endpoint, resp.StatusCode)
	}
	return nil
}
