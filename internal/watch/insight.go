package watch

import (
	"fmt"
	"time"

	"whale-watch/internal/domain"
	"whale-watch/internal/format"
)

// Stablecoin inflow-ratio buckets. Both boundaries are inclusive, so 70
// reads as risk-off and 30 as accumulation; the open interval between
// them is transitional.
const (
	riskOffRatioPct      = 70
	accumulationRatioPct = 30
)

// DeriveInsight interprets a snapshot into an ordered list of
// qualitative statements. It is pure and total: the same snapshot
// always yields the same lines, and a missing numeric field skips its
// line instead of erroring. now stamps the trailing line.
func DeriveInsight(s domain.Snapshot, now time.Time) []string {
	symbol := s.Market.Symbol
	if symbol == "" {
		symbol = "ETH"
	}

	lines := []string{
		fmt.Sprintf("Insight — %s %s", symbol, format.USD(s.Market.PriceUSD)),
	}

	if netFlow := s.ExchangeFlows.NetFlow; netFlow != nil {
		switch {
		case *netFlow < 0:
			lines = append(lines, "🔵 Flows: Net outflows → accumulation (bullish signal).")
		case *netFlow > 0:
			lines = append(lines, "🔴 Flows: Net inflows → distribution / sell pressure.")
		default:
			lines = append(lines, "⚪ Flows: Neutral.")
		}
	}

	if ratio := s.Stablecoin.InflowRatioPct; ratio != nil {
		switch {
		case *ratio >= riskOffRatioPct:
			lines = append(lines, "🟠 Stablecoin: High inflow ratio → risk-off (whales holding safety).")
		case *ratio <= accumulationRatioPct:
			lines = append(lines, "🟢 Stablecoin: Low ratio → deploying into crypto (accumulation).")
		default:
			lines = append(lines, "🟡 Stablecoin: Mixed / transitional state.")
		}
	}

	// Only three of the nine sign combinations carry a combined
	// reading; the rest intentionally stay silent.
	if netFlow, stableNet := s.ExchangeFlows.NetFlow, s.Stablecoin.NetFlow; netFlow != nil && stableNet != nil {
		switch {
		case *netFlow < 0 && *stableNet < 0:
			lines = append(lines, "✅ Combined: Whales pulling assets and deploying stablecoins → strong accumulation.")
		case *netFlow < 0 && *stableNet > 0:
			lines = append(lines, "⚠ Tokens leaving but stablecoins coming in — watch closely.")
		case *netFlow > 0 && *stableNet > 0:
			lines = append(lines, "❌ Distribution + stablecoin build-up → bearish posture.")
		}
	}

	lines = append(lines, fmt.Sprintf("As of %s UTC", now.UTC().Format("2006-01-02 15:04:05")))
	return lines
}
