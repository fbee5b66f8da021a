package api

import "encoding/json"

// ExchangeStatusResponse from GET /exchange/status
type ExchangeStatusResponse struct {
	ExchangeActive      bool   `json:"exchange_active"`
	TradingActive       bool   `json:"trading_active"`
	EstimatedResumeTime string `json:"exchange_estimated_resume_time,omitempty"`
}

// EventsResponse from GET /events
type EventsResponse struct {
	Events []APIEvent `json:"events"`
	Cursor string     `json:"cursor"`
}

// APIEvent represents an event from the Kalshi API.
type APIEvent struct {
	EventTicker          string `json:"event_ticker"`
	SeriesTicker         string `json:"series_ticker"`
	SubTitle             string `json:"sub_title"`
	Title                string `json:"title"`
	CollateralReturnType string `json:"collateral_return_type"`
	MutuallyExclusive    bool   `json:"mutually_exclusive"`
	Category             string `json:"category"`
	PriceLevelStructure  string `json:"price_level_structure"`
	AvailableOnBrokers   bool   `json:"available_on_brokers"`
	StrikeDate           string `json:"strike_date"`
	StrikePeriod         string `json:"strike_period"`
}

// MarketsResponse from GET /markets
type MarketsResponse struct {
	Markets []APIMarket `json:"markets"`
	Cursor  string      `json:"cursor"`
}

// APIMarket represents a market from the Kalshi API.
type APIMarket struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	MarketType  string `json:"market_type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	YesSubTitle string `json:"yes_sub_title"`
	NoSubTitle  string `json:"no_sub_title"`

	// Timestamps (ISO 8601)
	OpenTime               string `json:"open_time"`
	CloseTime              string `json:"close_time"`
	ExpectedExpirationTime string `json:"expected_expiration_time"`
	ExpirationTime         string `json:"expiration_time"`
	LatestExpirationTime   string `json:"latest_expiration_time"`

	SettlementTimerSeconds int    `json:"settlement_timer_seconds"`
	Status                 string `json:"status"`
	ResponsePriceUnits     string `json:"response_price_units"`

	NotionalValue        int    `json:"notional_value"`
	NotionalValueDollars string `json:"notional_value_dollars"`

	// Prices in cents
	YesBid         int `json:"yes_bid"`
	YesAsk         int `json:"yes_ask"`
	NoBid          int `json:"no_bid"`
	NoAsk          int `json:"no_ask"`
	LastPrice      int `json:"last_price"`
	PreviousYesBid int `json:"previous_yes_bid"`
	PreviousYesAsk int `json:"previous_yes_ask"`
	PreviousPrice  int `json:"previous_price"`

	// Prices as strings (sub-penny)
	YesBidDollars         string `json:"yes_bid_dollars"`
	YesAskDollars         string `json:"yes_ask_dollars"`
	NoBidDollars          string `json:"no_bid_dollars"`
	NoAskDollars          string `json:"no_ask_dollars"`
	LastPriceDollars      string `json:"last_price_dollars"`
	PreviousYesBidDollars string `json:"previous_yes_bid_dollars"`
	PreviousYesAskDollars string `json:"previous_yes_ask_dollars"`
	PreviousPriceDollars  string `json:"previous_price_dollars"`

	// Activity
	Volume           int64  `json:"volume"`
	Volume24h        int64  `json:"volume_24h"`
	Liquidity        int64  `json:"liquidity"`
	LiquidityDollars string `json:"liquidity_dollars"`
	OpenInterest     int64  `json:"open_interest"`

	// Settlement
	Result          string `json:"result"`
	CanCloseEarly   bool   `json:"can_close_early"`
	ExpirationValue string `json:"expiration_value"`

	Category       string `json:"category"`
	RiskLimitCents int64  `json:"risk_limit_cents"`

	// Strike structure; absent on markets without one
	StrikeType   string          `json:"strike_type"`
	CustomStrike json.RawMessage `json:"custom_strike"`
	FloorStrike  *float64        `json:"floor_strike"`
	CapStrike    *float64        `json:"cap_strike"`

	RulesPrimary   string `json:"rules_primary"`
	RulesSecondary string `json:"rules_secondary"`
	TickSize       int    `json:"tick_size"`

	// Multivariate event collections
	MVECollectionTicker string          `json:"mve_collection_ticker"`
	MVESelectedLegs     json.RawMessage `json:"mve_selected_legs"`

	EarlyCloseCondition     string `json:"early_close_condition"`
	PrimaryParticipantKey   string `json:"primary_participant_key"`
	FeeWaiverExpirationTime string `json:"fee_waiver_expiration_time"`
}

// GetEventsOptions configures a GetEvents request.
type GetEventsOptions struct {
	Limit             int
	Cursor            string
	SeriesTicker      string
	Status            string
	WithNestedMarkets bool
}

// GetMarketsOptions configures a GetMarkets request.
type GetMarketsOptions struct {
	Limit        int
	Cursor       string
	EventTicker  string
	SeriesTicker string
	Status       string
}
