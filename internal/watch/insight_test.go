package watch

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"whale-watch/internal/domain"
)

var insightNow = time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)

func snapshotWith(netFlow, ratio, stableNet *float64) domain.Snapshot {
	return domain.Snapshot{
		Market:        domain.Market{Symbol: "ETH", PriceUSD: domain.Float(3757.84)},
		ExchangeFlows: domain.ExchangeFlows{NetFlow: netFlow},
		Stablecoin:    domain.Stablecoin{InflowRatioPct: ratio, NetFlow: stableNet},
	}
}

func TestDeriveInsightIsDeterministic(t *testing.T) {
	t.Parallel()

	snap := snapshotWith(domain.Float(-60_000_000), domain.Float(100), domain.Float(-10_000_000))
	first := DeriveInsight(snap, insightNow)
	second := DeriveInsight(snap, insightNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("insight not deterministic:\n%v\n%v", first, second)
	}
}

func TestDeriveInsightHeaderAndTimestampAlwaysPresent(t *testing.T) {
	t.Parallel()

	lines := DeriveInsight(domain.Snapshot{}, insightNow)
	if len(lines) != 2 {
		t.Fatalf("expected only header and timestamp for empty snapshot, got %v", lines)
	}
	if lines[0] != "Insight — ETH N/A" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "As of 2026-08-29 12:30:00 UTC" {
		t.Fatalf("unexpected timestamp line: %q", lines[1])
	}
}

func TestDeriveInsightFlowDirection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		netFlow float64
		want    string
	}{
		{-1, "accumulation"},
		{1, "distribution"},
		{0, "Neutral"},
	}
	for _, tc := range cases {
		lines := DeriveInsight(snapshotWith(domain.Float(tc.netFlow), nil, nil), insightNow)
		if len(lines) != 3 {
			t.Fatalf("netFlow=%v: expected 3 lines, got %v", tc.netFlow, lines)
		}
		if !strings.Contains(lines[1], tc.want) {
			t.Fatalf("netFlow=%v: expected %q in %q", tc.netFlow, tc.want, lines[1])
		}
	}
}

func TestDeriveInsightStablecoinBuckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ratio float64
		want  string
	}{
		{70, "risk-off"},
		{70.1, "risk-off"},
		{30, "accumulation"},
		{29.9, "accumulation"},
		{30.1, "Mixed"},
		{69.9, "Mixed"},
		{50, "Mixed"},
	}
	for _, tc := range cases {
		lines := DeriveInsight(snapshotWith(nil, domain.Float(tc.ratio), nil), insightNow)
		if len(lines) != 3 {
			t.Fatalf("ratio=%v: expected 3 lines, got %v", tc.ratio, lines)
		}
		if !strings.Contains(lines[1], tc.want) {
			t.Fatalf("ratio=%v: expected %q in %q", tc.ratio, tc.want, lines[1])
		}
	}
}

func TestDeriveInsightCombinedHeuristic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		netFlow   float64
		stableNet float64
		want      string
	}{
		{"both negative", -60_000_000, -10_000_000, "strong accumulation"},
		{"divergence", -60_000_000, 10_000_000, "watch closely"},
		{"both positive", 60_000_000, 10_000_000, "bearish"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			snap := snapshotWith(domain.Float(tc.netFlow), nil, domain.Float(tc.stableNet))
			lines := DeriveInsight(snap, insightNow)
			combined := lines[len(lines)-2]
			if !strings.Contains(combined, tc.want) {
				t.Fatalf("expected %q in %q", tc.want, combined)
			}
		})
	}
}

func TestDeriveInsightUnclassifiedSignsStaySilent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		netFlow   float64
		stableNet float64
	}{
		{"exchange positive, stable negative", 10, -10},
		{"both zero", 0, 0},
		{"exchange negative, stable zero", -10, 0},
		{"exchange zero, stable positive", 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			snap := snapshotWith(domain.Float(tc.netFlow), nil, domain.Float(tc.stableNet))
			lines := DeriveInsight(snap, insightNow)
			// Header, flow line, timestamp: no combined line.
			if len(lines) != 3 {
				t.Fatalf("expected no combined line, got %v", lines)
			}
		})
	}
}

func TestDeriveInsightMissingNumericsSkipLines(t *testing.T) {
	t.Parallel()

	// Net flow present but stablecoin section entirely unknown: only
	// header, flow line and timestamp remain.
	snap := snapshotWith(domain.Float(-5), nil, nil)
	lines := DeriveInsight(snap, insightNow)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %v", lines)
	}

	// Stablecoin ratio present without any flow data: no flow line and
	// no combined line.
	snap = snapshotWith(nil, domain.Float(80), domain.Float(5))
	lines = DeriveInsight(snap, insightNow)
	if len(lines) != 3 || !strings.Contains(lines[1], "risk-off") {
		t.Fatalf("expected header, stablecoin line, timestamp; got %v", lines)
	}
}

func TestDeriveInsightFallbackSnapshot(t *testing.T) {
	t.Parallel()

	lines := DeriveInsight(domain.FallbackSnapshot(), insightNow)
	want := []string{
		"Insight — ETH $3,757.84",
		"🔵 Flows: Net outflows → accumulation (bullish signal).",
		"🟠 Stablecoin: High inflow ratio → risk-off (whales holding safety).",
		"✅ Combined: Whales pulling assets and deploying stablecoins → strong accumulation.",
		"As of 2026-08-29 12:30:00 UTC",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected insight lines:\n%v\nwant:\n%v", lines, want)
	}
}
