// Package watch aggregates dashboard telemetry into immutable
// snapshots and derives sentiment insights and threshold alerts from
// them. Fetching is isolated behind the SectionFetcher boundary; the
// insight and alert evaluators are pure functions over a Snapshot.
package watch

import (
	"context"
	"sync"

	"whale-watch/internal/domain"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// SectionFetcher retrieves the four telemetry sections. Each call
// either returns live data or an error; errors are per-section failure
// signals, never fatal.
type SectionFetcher interface {
	FetchMarket(ctx context.Context) (*domain.Market, error)
	FetchExchangeFlows(ctx context.Context) (*domain.ExchangeFlows, error)
	FetchStablecoin(ctx context.Context) (*domain.Stablecoin, error)
	FetchWhaleTransfers(ctx context.Context) ([]domain.Transfer, error)
}

// Service builds snapshots with per-section fallback. It holds no
// mutable state: every BuildSnapshot call is independent, with no
// caching or coordination between timer-driven and command-driven
// invocations.
type Service struct {
	tracer  trace.Tracer
	fetcher SectionFetcher
}

func NewService(tracer trace.Tracer, fetcher SectionFetcher) *Service {
	return &Service{tracer: tracer, fetcher: fetcher}
}

// BuildSnapshot fetches all four sections concurrently and merges them
// into one snapshot. A section that fails takes its fallback default
// independently of the other three; a whale-transfer call that
// succeeds with zero transfers stays live. No retries happen here, the
// next scheduled cycle is the sole recovery mechanism.
func (s *Service) BuildSnapshot(ctx context.Context) domain.Snapshot {
	ctx, span := s.tracer.Start(ctx, "watch.build-snapshot")
	defer span.End()

	var (
		market *domain.Market
		flows  *domain.ExchangeFlows
		stable *domain.Stablecoin
		whales []domain.Transfer

		marketErr, flowsErr, stableErr, whalesErr error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		market, marketErr = s.fetcher.FetchMarket(ctx)
	}()
	go func() {
		defer wg.Done()
		flows, flowsErr = s.fetcher.FetchExchangeFlows(ctx)
	}()
	go func() {
		defer wg.Done()
		stable, stableErr = s.fetcher.FetchStablecoin(ctx)
	}()
	go func() {
		defer wg.Done()
		whales, whalesErr = s.fetcher.FetchWhaleTransfers(ctx)
	}()
	wg.Wait()

	fallback := domain.FallbackSnapshot()
	snapshot := domain.Snapshot{}
	degraded := 0

	if marketErr == nil && market != nil {
		snapshot.Market = *market
	} else {
		snapshot.Market = fallback.Market
		degraded++
	}
	if flowsErr == nil && flows != nil {
		snapshot.ExchangeFlows = *flows
	} else {
		snapshot.ExchangeFlows = fallback.ExchangeFlows
		degraded++
	}
	if stableErr == nil && stable != nil {
		snapshot.Stablecoin = *stable
	} else {
		snapshot.Stablecoin = fallback.Stablecoin
		degraded++
	}
	// An empty live list is a valid result; only a failed call falls
	// back to the sample transfers.
	if whalesErr == nil && whales != nil {
		snapshot.WhaleTransfers = whales
	} else {
		snapshot.WhaleTransfers = fallback.WhaleTransfers
		degraded++
	}

	if degraded > 0 {
		log.Debug().Int("sections", degraded).Msg("snapshot built with fallback sections")
	}
	return snapshot
}
