package dune

// ColumnSchema describes one column in a table create payload.
type ColumnSchema struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// Descriptions attached to the destination tables on first creation.
const (
	EventsTableDescription  = "Kalshi prediction market events data. Updated daily with new events and status changes. Data sourced from Kalshi API."
	MarketsTableDescription = "Kalshi prediction market individual markets data. Updated daily with current pricing, volume, and liquidity metrics. Data sourced from Kalshi API."
)

// EventsSchema returns the column definitions for the events table, in
// snapshot header order.
func EventsSchema() []ColumnSchema {
	return []ColumnSchema{
		{Name: "event_ticker", Type: "varchar"},
		{Name: "series_ticker", Type: "varchar", Nullable: true},
		{Name: "sub_title", Type: "varchar", Nullable: true},
		{Name: "title", Type: "varchar"},
		{Name: "collateral_return_type", Type: "varchar", Nullable: true},
		{Name: "mutually_exclusive", Type: "boolean", Nullable: true},
		{Name: "category", Type: "varchar", Nullable: true},
		{Name: "price_level_structure", Type: "varchar", Nullable: true},
		{Name: "available_on_brokers", Type: "boolean", Nullable: true},
		{Name: "collection_date", Type: "varchar"},
		{Name: "date", Type: "varchar"},
		{Name: "strike_date", Type: "varchar", Nullable: true},
		{Name: "strike_period", Type: "varchar", Nullable: true},
	}
}

// MarketsSchema returns the column definitions for the markets table,
// in snapshot header order. Prices in cents are integers, the derived
// dollar columns are doubles, and strike fields stay varchar because
// custom strikes can be objects serialized to JSON.
func MarketsSchema() []ColumnSchema {
	return []ColumnSchema{
		{Name: "ticker", Type: "varchar"},
		{Name: "event_ticker", Type: "varchar"},
		{Name: "market_type", Type: "varchar", Nullable: true},
		{Name: "title", Type: "varchar"},
		{Name: "subtitle", Type: "varchar", Nullable: true},
		{Name: "yes_sub_title", Type: "varchar", Nullable: true},
		{Name: "no_sub_title", Type: "varchar", Nullable: true},
		{Name: "open_time", Type: "varchar", Nullable: true},
		{Name: "close_time", Type: "varchar", Nullable: true},
		{Name: "expected_expiration_time", Type: "varchar", Nullable: true},
		{Name: "expiration_time", Type: "varchar", Nullable: true},
		{Name: "latest_expiration_time", Type: "varchar", Nullable: true},
		{Name: "settlement_timer_seconds", Type: "integer", Nullable: true},
		{Name: "status", Type: "varchar"},
		{Name: "response_price_units", Type: "varchar", Nullable: true},
		{Name: "notional_value", Type: "integer", Nullable: true},
		{Name: "notional_value_dollars", Type: "double", Nullable: true},
		{Name: "yes_bid", Type: "integer", Nullable: true},
		{Name: "yes_bid_dollars", Type: "double", Nullable: true},
		{Name: "yes_ask", Type: "integer", Nullable: true},
		{Name: "yes_ask_dollars", Type: "double", Nullable: true},
		{Name: "no_bid", Type: "integer", Nullable: true},
		{Name: "no_bid_dollars", Type: "double", Nullable: true},
		{Name: "no_ask", Type: "integer", Nullable: true},
		{Name: "no_ask_dollars", Type: "double", Nullable: true},
		{Name: "last_price", Type: "integer", Nullable: true},
		{Name: "last_price_dollars", Type: "double", Nullable: true},
		{Name: "previous_yes_bid", Type: "integer", Nullable: true},
		{Name: "previous_yes_bid_dollars", Type: "double", Nullable: true},
		{Name: "previous_yes_ask", Type: "integer", Nullable: true},
		{Name: "previous_yes_ask_dollars", Type: "double", Nullable: true},
		{Name: "previous_price", Type: "integer", Nullable: true},
		{Name: "previous_price_dollars", Type: "double", Nullable: true},
		{Name: "volume", Type: "integer", Nullable: true},
		{Name: "volume_24h", Type: "integer", Nullable: true},
		{Name: "liquidity", Type: "double", Nullable: true},
		{Name: "liquidity_dollars", Type: "double", Nullable: true},
		{Name: "open_interest", Type: "integer", Nullable: true},
		{Name: "result", Type: "varchar", Nullable: true},
		{Name: "can_close_early", Type: "boolean", Nullable: true},
		{Name: "expiration_value", Type: "varchar", Nullable: true},
		{Name: "category", Type: "varchar", Nullable: true},
		{Name: "risk_limit_cents", Type: "integer", Nullable: true},
		{Name: "strike_type", Type: "varchar", Nullable: true},
		{Name: "custom_strike", Type: "varchar", Nullable: true},
		{Name: "rules_primary", Type: "varchar", Nullable: true},
		{Name: "rules_secondary", Type: "varchar", Nullable: true},
		{Name: "tick_size", Type: "integer", Nullable: true},
		{Name: "mve_collection_ticker", Type: "varchar", Nullable: true},
		{Name: "mve_selected_legs", Type: "varchar", Nullable: true},
		{Name: "collection_date", Type: "varchar"},
		{Name: "date", Type: "varchar"},
		{Name: "floor_strike", Type: "varchar", Nullable: true},
		{Name: "early_close_condition", Type: "varchar", Nullable: true},
		{Name: "cap_strike", Type: "varchar", Nullable: true},
		{Name: "primary_participant_key", Type: "varchar", Nullable: true},
		{Name: "fee_waiver_expiration_time", Type: "varchar", Nullable: true},
	}
}
