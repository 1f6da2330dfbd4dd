package domain

// Market holds the spot-market section of a dashboard snapshot.
// Numeric fields are pointers: a nil value means the upstream payload
// omitted the field, and consumers must treat it as unknown rather
// than zero.
type Market struct {
	Symbol       string   `json:"symbol"`
	PriceUSD     *float64 `json:"price_usd"`
	Change24hPct *float64 `json:"price_change_24h_pct"`
	Volume24hUSD *float64 `json:"volume_24h_usd"`
	MarketCapUSD *float64 `json:"market_cap_usd"`
}

// ExchangeFlows tracks aggregate exchange inflow/outflow. NetFlow is
// outflow-minus-inflow signed so that negative means net outflow
// (assets leaving exchanges, commonly read as accumulation).
type ExchangeFlows struct {
	TotalInflow  *float64 `json:"total_inflow"`
	TotalOutflow *float64 `json:"total_outflow"`
	NetFlow      *float64 `json:"net_flow"`
	Sentiment    string   `json:"sentiment"`
}

// Stablecoin tracks stablecoin rotation metrics. InflowRatioPct is the
// percentage (0-100) of tracked stablecoin flow that is inbound.
type Stablecoin struct {
	InflowRatioPct *float64 `json:"stablecoin_inflow_ratio_pct"`
	NetFlow        *float64 `json:"stablecoin_net_flow"`
	Mode           string   `json:"mode"`
}

// Transfer is a single observed whale transfer.
type Transfer struct {
	Token  string  `json:"token"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Snapshot is one aggregated read of all tracked sections at a point in
// time. It is built fresh on every cycle, never mutated after
// construction, and never cached or persisted. Each section is either
// entirely live or entirely the fallback default.
type Snapshot struct {
	Market         Market        `json:"market"`
	ExchangeFlows  ExchangeFlows `json:"exchange_flows"`
	Stablecoin     Stablecoin    `json:"stablecoin"`
	WhaleTransfers []Transfer    `json:"whale_transfers"`
}

// Float returns a pointer to v. Convenience for building snapshots with
// optional numeric fields.
func Float(v float64) *float64 {
	return &v
}

// FallbackSnapshot returns the static sample data substituted
// section-by-section when live retrieval fails. Callers get a fresh
// value each time so a returned snapshot is never shared.
func FallbackSnapshot() Snapshot {
	return Snapshot{
		Market: Market{
			Symbol:       "ETH",
			PriceUSD:     Float(3757.84),
			Change24hPct: Float(-13.22),
			Volume24hUSD: Float(104_010_000_000),
			MarketCapUSD: Float(454_450_000_000),
		},
		ExchangeFlows: ExchangeFlows{
			TotalInflow:  Float(530_276_600),
			TotalOutflow: Float(663_261_947),
			NetFlow:      Float(-132_985_346),
			Sentiment:    "Strong Accumulation (Bullish)",
		},
		Stablecoin: Stablecoin{
			InflowRatioPct: Float(100.0),
			NetFlow:        Float(-20_000_000),
			Mode:           "Risk-Off -> Deploying",
		},
		WhaleTransfers: []Transfer{
			{Token: "USDT", From: "0xc0ba...1a09", To: "0x28c6...1d60", Amount: 1_851_370.43},
			{Token: "USDT", From: "0x17dc...403a", To: "0xaa8b...3efb", Amount: 39_365_167.96},
		},
	}
}
