package watch

import (
	"fmt"

	"whale-watch/internal/domain"
	"whale-watch/internal/format"
)

// Alert thresholds in USD. The flow thresholds are inclusive and
// mutually exclusive by sign; the transfer threshold applies to every
// transfer independently.
const (
	AccumulationFlowThreshold = -50_000_000.0
	DistributionFlowThreshold = 50_000_000.0
	BigTransferThreshold      = 10_000_000.0
)

// EvaluateAlerts checks a snapshot against the fixed thresholds and
// returns one line per triggered condition: at most one per flow
// threshold, plus one per qualifying whale transfer in original order,
// uncapped. An empty result means nothing to dispatch, it is not an
// error.
func EvaluateAlerts(s domain.Snapshot) []string {
	var alerts []string

	if netFlow := s.ExchangeFlows.NetFlow; netFlow != nil {
		if *netFlow <= AccumulationFlowThreshold {
			alerts = append(alerts, fmt.Sprintf("🚨 Strong accumulation: Net Flow = %s", format.USD(netFlow)))
		}
		if *netFlow >= DistributionFlowThreshold {
			alerts = append(alerts, fmt.Sprintf("⚠ Strong distribution: Net Flow = %s", format.USD(netFlow)))
		}
	}

	for _, transfer := range s.WhaleTransfers {
		if transfer.Amount >= BigTransferThreshold {
			alerts = append(alerts, fmt.Sprintf(
				"🐋 Whale transfer: %s %s from %s to %s",
				format.USD(domain.Float(transfer.Amount)),
				transfer.Token,
				format.ShortAddr(transfer.From),
				format.ShortAddr(transfer.To),
			))
		}
	}

	return alerts
}
