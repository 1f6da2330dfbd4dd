package domain

import "testing"

func TestFallbackSnapshotIsIndependentPerCall(t *testing.T) {
	t.Parallel()

	a := FallbackSnapshot()
	b := FallbackSnapshot()

	*a.Market.PriceUSD = 1
	a.WhaleTransfers[0].Amount = 1

	if *b.Market.PriceUSD != 3757.84 {
		t.Fatalf("fallback market mutated across calls: %v", *b.Market.PriceUSD)
	}
	if b.WhaleTransfers[0].Amount != 1_851_370.43 {
		t.Fatalf("fallback transfers mutated across calls: %v", b.WhaleTransfers[0].Amount)
	}
}

func TestFallbackSnapshotSampleValues(t *testing.T) {
	t.Parallel()

	s := FallbackSnapshot()
	if *s.ExchangeFlows.NetFlow != -132_985_346 {
		t.Fatalf("unexpected fallback net flow: %v", *s.ExchangeFlows.NetFlow)
	}
	if *s.Stablecoin.InflowRatioPct != 100.0 || *s.Stablecoin.NetFlow != -20_000_000 {
		t.Fatalf("unexpected fallback stablecoin section: %+v", s.Stablecoin)
	}
	if len(s.WhaleTransfers) != 2 {
		t.Fatalf("expected 2 sample transfers, got %d", len(s.WhaleTransfers))
	}
}
