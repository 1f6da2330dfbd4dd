package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"whale-watch/internal/domain"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

const defaultTimeout = 8 * time.Second

// Upstream resource paths served by the blockchain dashboard API.
const (
	pathMarket         = "/api/market"
	pathExchangeFlows  = "/api/exchange_flows"
	pathStablecoin     = "/api/stablecoin"
	pathWhaleTransfers = "/api/whale_transfers"
)

var (
	// ErrNotConfigured is returned by every fetch when no base URL is
	// set. Callers treat it like any other upstream failure.
	ErrNotConfigured = errors.New("dashboard API base URL not configured")

	// ErrEmptyPayload is returned when the upstream responds with an
	// empty JSON object or null, which carries no usable section data.
	ErrEmptyPayload = errors.New("dashboard API returned an empty payload")
)

// DashboardClient fetches the four telemetry sections from the
// dashboard API. Every failure mode (missing configuration, transport
// error, non-2xx status, malformed body) surfaces as an error return,
// never a panic, so the aggregator can substitute fallback data
// per section.
type DashboardClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewDashboardClient(baseURL, apiKey string, timeout time.Duration, tracer trace.Tracer) *DashboardClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &DashboardClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

// FetchMarket retrieves the spot-market section.
func (c *DashboardClient) FetchMarket(ctx context.Context) (*domain.Market, error) {
	ctx, span := c.tracer.Start(ctx, "dashboard.fetch-market")
	defer span.End()

	var m domain.Market
	if err := c.getSection(ctx, pathMarket, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// FetchExchangeFlows retrieves the exchange inflow/outflow section.
func (c *DashboardClient) FetchExchangeFlows(ctx context.Context) (*domain.ExchangeFlows, error) {
	ctx, span := c.tracer.Start(ctx, "dashboard.fetch-exchange-flows")
	defer span.End()

	var f domain.ExchangeFlows
	if err := c.getSection(ctx, pathExchangeFlows, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FetchStablecoin retrieves the stablecoin rotation section.
func (c *DashboardClient) FetchStablecoin(ctx context.Context) (*domain.Stablecoin, error) {
	ctx, span := c.tracer.Start(ctx, "dashboard.fetch-stablecoin")
	defer span.End()

	var s domain.Stablecoin
	if err := c.getSection(ctx, pathStablecoin, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FetchWhaleTransfers retrieves recent whale transfers. A response that
// decodes to zero transfers is a successful empty result, not an error:
// the returned slice is non-nil so callers can tell it apart from a
// failed call.
func (c *DashboardClient) FetchWhaleTransfers(ctx context.Context) ([]domain.Transfer, error) {
	ctx, span := c.tracer.Start(ctx, "dashboard.fetch-whale-transfers")
	defer span.End()

	body, err := c.get(ctx, pathWhaleTransfers)
	if err != nil {
		return nil, err
	}

	var transfers []domain.Transfer
	if err := json.Unmarshal(body, &transfers); err != nil {
		err = fmt.Errorf("parse %s: %w", pathWhaleTransfers, err)
		log.Debug().Err(err).Msg("whale transfers fetch failed")
		return nil, err
	}
	if transfers == nil {
		transfers = []domain.Transfer{}
	}
	return transfers, nil
}

// getSection fetches an object resource and decodes it into target.
// Empty objects are rejected so that "succeeded with nothing in it"
// triggers fallback just like a failed call would.
func (c *DashboardClient) getSection(ctx context.Context, path string, target any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		err = fmt.Errorf("parse %s: %w", path, err)
		log.Debug().Err(err).Msg("section fetch failed")
		return err
	}
	if len(fields) == 0 {
		log.Debug().Str("path", path).Msg("section fetch returned empty payload")
		return fmt.Errorf("%s: %w", path, ErrEmptyPayload)
	}
	if err := json.Unmarshal(body, target); err != nil {
		err = fmt.Errorf("parse %s: %w", path, err)
		log.Debug().Err(err).Msg("section fetch failed")
		return err
	}
	return nil
}

func (c *DashboardClient) get(ctx context.Context, path string) ([]byte, error) {
	if c.baseURL == "" {
		log.Debug().Str("path", path).Msg("skipping fetch: dashboard API not configured")
		return nil, ErrNotConfigured
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("dashboard GET failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("dashboard API error %d: %s", resp.StatusCode, string(body))
		log.Debug().Err(err).Str("url", url).Msg("dashboard GET failed")
		return nil, err
	}

	return io.ReadAll(resp.Body)
}
