package watch

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"whale-watch/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("watch-test")

var errUpstream = errors.New("upstream unavailable")

type stubFetcher struct {
	market *domain.Market
	flows  *domain.ExchangeFlows
	stable *domain.Stablecoin
	whales []domain.Transfer

	marketErr error
	flowsErr  error
	stableErr error
	whalesErr error
}

func (f *stubFetcher) FetchMarket(ctx context.Context) (*domain.Market, error) {
	return f.market, f.marketErr
}

func (f *stubFetcher) FetchExchangeFlows(ctx context.Context) (*domain.ExchangeFlows, error) {
	return f.flows, f.flowsErr
}

func (f *stubFetcher) FetchStablecoin(ctx context.Context) (*domain.Stablecoin, error) {
	return f.stable, f.stableErr
}

func (f *stubFetcher) FetchWhaleTransfers(ctx context.Context) ([]domain.Transfer, error) {
	return f.whales, f.whalesErr
}

func liveFetcher() *stubFetcher {
	return &stubFetcher{
		market: &domain.Market{Symbol: "ETH", PriceUSD: domain.Float(4000)},
		flows:  &domain.ExchangeFlows{NetFlow: domain.Float(12345)},
		stable: &domain.Stablecoin{InflowRatioPct: domain.Float(55), NetFlow: domain.Float(-1)},
		whales: []domain.Transfer{{Token: "USDT", Amount: 777}},
	}
}

func TestBuildSnapshotAllLive(t *testing.T) {
	t.Parallel()

	fetcher := liveFetcher()
	svc := NewService(testTracer, fetcher)

	snap := svc.BuildSnapshot(context.Background())
	if *snap.Market.PriceUSD != 4000 || *snap.ExchangeFlows.NetFlow != 12345 {
		t.Fatalf("expected live sections, got %+v", snap)
	}
	if *snap.Stablecoin.InflowRatioPct != 55 || len(snap.WhaleTransfers) != 1 {
		t.Fatalf("expected live sections, got %+v", snap)
	}
}

func TestBuildSnapshotSingleSectionFallsBack(t *testing.T) {
	t.Parallel()

	fallback := domain.FallbackSnapshot()

	cases := []struct {
		name   string
		mutate func(*stubFetcher)
		check  func(t *testing.T, snap domain.Snapshot)
	}{
		{
			"market fails",
			func(f *stubFetcher) { f.market, f.marketErr = nil, errUpstream },
			func(t *testing.T, snap domain.Snapshot) {
				if !reflect.DeepEqual(snap.Market, fallback.Market) {
					t.Fatalf("market should be fallback: %+v", snap.Market)
				}
				if *snap.ExchangeFlows.NetFlow != 12345 || len(snap.WhaleTransfers) != 1 {
					t.Fatalf("other sections must stay live: %+v", snap)
				}
			},
		},
		{
			"flows fail",
			func(f *stubFetcher) { f.flows, f.flowsErr = nil, errUpstream },
			func(t *testing.T, snap domain.Snapshot) {
				if !reflect.DeepEqual(snap.ExchangeFlows, fallback.ExchangeFlows) {
					t.Fatalf("flows should be fallback: %+v", snap.ExchangeFlows)
				}
				if *snap.Market.PriceUSD != 4000 {
					t.Fatalf("market must stay live: %+v", snap.Market)
				}
			},
		},
		{
			"stablecoin fails",
			func(f *stubFetcher) { f.stable, f.stableErr = nil, errUpstream },
			func(t *testing.T, snap domain.Snapshot) {
				if !reflect.DeepEqual(snap.Stablecoin, fallback.Stablecoin) {
					t.Fatalf("stablecoin should be fallback: %+v", snap.Stablecoin)
				}
			},
		},
		{
			"whales fail",
			func(f *stubFetcher) { f.whales, f.whalesErr = nil, errUpstream },
			func(t *testing.T, snap domain.Snapshot) {
				if !reflect.DeepEqual(snap.WhaleTransfers, fallback.WhaleTransfers) {
					t.Fatalf("whales should be fallback: %+v", snap.WhaleTransfers)
				}
				if *snap.Market.PriceUSD != 4000 {
					t.Fatalf("market must stay live: %+v", snap.Market)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fetcher := liveFetcher()
			tc.mutate(fetcher)
			snap := NewService(testTracer, fetcher).BuildSnapshot(context.Background())
			tc.check(t, snap)
		})
	}
}

func TestBuildSnapshotEmptyWhaleListStaysLive(t *testing.T) {
	t.Parallel()

	fetcher := liveFetcher()
	fetcher.whales = []domain.Transfer{}

	snap := NewService(testTracer, fetcher).BuildSnapshot(context.Background())
	if len(snap.WhaleTransfers) != 0 {
		t.Fatalf("empty live list must not fall back, got %+v", snap.WhaleTransfers)
	}
}

func TestBuildSnapshotTotalDegradation(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{
		marketErr: errUpstream,
		flowsErr:  errUpstream,
		stableErr: errUpstream,
		whalesErr: errUpstream,
	}

	snap := NewService(testTracer, fetcher).BuildSnapshot(context.Background())
	if !reflect.DeepEqual(snap, domain.FallbackSnapshot()) {
		t.Fatalf("expected full fallback snapshot, got %+v", snap)
	}
}
