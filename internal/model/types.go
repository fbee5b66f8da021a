package model

import (
	"errors"
	"time"
)

// Stamp marks every record collected during a single run with the
// instant the run started.
type Stamp struct {
	CollectionDate string // RFC3339 UTC instant of the run
	Date           string // YYYY-MM-DD day key, derived from the same instant
}

// NewStamp builds a Stamp from t, normalized to UTC.
func NewStamp(t time.Time) Stamp {
	t = t.UTC()
	return Stamp{
		CollectionDate: t.Format(time.RFC3339),
		Date:           t.Format("2006-01-02"),
	}
}

// EventRecord is one snapshot row for a Kalshi event.
type EventRecord struct {
	EventTicker          string // Primary key (e.g., "PRES-2024")
	SeriesTicker         string // Parent series (e.g., "PRES")
	SubTitle             string
	Title                string
	CollateralReturnType string
	MutuallyExclusive    bool
	Category             string
	PriceLevelStructure  string
	AvailableOnBrokers   bool

	Stamp

	StrikeDate   string // ISO 8601, empty when the event has no strike date
	StrikePeriod string
}

// Validate reports whether the record carries its identifying fields.
func (e *EventRecord) Validate() error {
	if e.EventTicker == "" {
		return errors.New("missing event_ticker")
	}
	if e.Title == "" {
		return errors.New("missing title")
	}
	return nil
}

// MarketRecord is one snapshot row for a Kalshi market.
type MarketRecord struct {
	Ticker      string // Primary key (e.g., "PRES-2024-DEM")
	EventTicker string // Parent event
	MarketType  string // "binary" or "scalar"
	Title       string
	Subtitle    string
	YesSubTitle string
	NoSubTitle  string

	// Lifecycle timestamps (ISO 8601, passed through from the API)
	OpenTime               string
	CloseTime              string
	ExpectedExpirationTime string
	ExpirationTime         string
	LatestExpirationTime   string

	SettlementTimerSeconds int
	Status                 string
	ResponsePriceUnits     string

	// Notional
	NotionalValue        int
	NotionalValueDollars string

	// Prices in cents plus their sub-penny dollar strings
	YesBid                  int
	YesBidDollars           string
	YesAsk                  int
	YesAskDollars           string
	NoBid                   int
	NoBidDollars            string
	NoAsk                   int
	NoAskDollars            string
	LastPrice               int
	LastPriceDollars        string
	PreviousYesBid          int
	PreviousYesBidDollars   string
	PreviousYesAsk          int
	PreviousYesAskDollars   string
	PreviousPrice           int
	PreviousPriceDollars    string

	// Activity
	Volume           int64
	Volume24h        int64
	Liquidity        int64
	LiquidityDollars string
	OpenInterest     int64

	// Settlement
	Result          string
	CanCloseEarly   bool
	ExpirationValue string

	Category       string
	RiskLimitCents int64

	// Strike structure; pointers stay nil (empty CSV cell) when the
	// market has no strike of that kind
	StrikeType   string
	CustomStrike string // compact JSON object, empty when absent
	FloorStrike  *float64
	CapStrike    *float64

	RulesPrimary   string
	RulesSecondary string
	TickSize       int

	// Multivariate event collections
	MVECollectionTicker string
	MVESelectedLegs     string // compact JSON array, empty when absent

	Stamp

	EarlyCloseCondition     string
	PrimaryParticipantKey   string
	FeeWaiverExpirationTime string
}

// Validate reports whether the record carries its identifying fields.
func (m *MarketRecord) Validate() error {
	if m.Ticker == "" {
		return errors.New("missing ticker")
	}
	if m.EventTicker == "" {
		return errors.New("missing event_ticker")
	}
	return nil
}
