package model

import "strconv"

// EventColumns is the fixed header of an events snapshot, in upload order.
var EventColumns = []string{
	"event_ticker",
	"series_ticker",
	"sub_title",
	"title",
	"collateral_return_type",
	"mutually_exclusive",
	"category",
	"price_level_structure",
	"available_on_brokers",
	"collection_date",
	"date",
	"strike_date",
	"strike_period",
}

// MarketColumns is the fixed header of a markets snapshot, in upload order.
var MarketColumns = []string{
	"ticker",
	"event_ticker",
	"market_type",
	"title",
	"subtitle",
	"yes_sub_title",
	"no_sub_title",
	"open_time",
	"close_time",
	"expected_expiration_time",
	"expiration_time",
	"latest_expiration_time",
	"settlement_timer_seconds",
	"status",
	"response_price_units",
	"notional_value",
	"notional_value_dollars",
	"yes_bid",
	"yes_bid_dollars",
	"yes_ask",
	"yes_ask_dollars",
	"no_bid",
	"no_bid_dollars",
	"no_ask",
	"no_ask_dollars",
	"last_price",
	"last_price_dollars",
	"previous_yes_bid",
	"previous_yes_bid_dollars",
	"previous_yes_ask",
	"previous_yes_ask_dollars",
	"previous_price",
	"previous_price_dollars",
	"volume",
	"volume_24h",
	"liquidity",
	"liquidity_dollars",
	"open_interest",
	"result",
	"can_close_early",
	"expiration_value",
	"category",
	"risk_limit_cents",
	"strike_type",
	"custom_strike",
	"rules_primary",
	"rules_secondary",
	"tick_size",
	"mve_collection_ticker",
	"mve_selected_legs",
	"collection_date",
	"date",
	"floor_strike",
	"early_close_condition",
	"cap_strike",
	"primary_participant_key",
	"fee_waiver_expiration_time",
}

// Row renders the record as one CSV row matching EventColumns.
func (e *EventRecord) Row() []string {
	return []string{
		e.EventTicker,
		e.SeriesTicker,
		e.SubTitle,
		e.Title,
		e.CollateralReturnType,
		strconv.FormatBool(e.MutuallyExclusive),
		e.Category,
		e.PriceLevelStructure,
		strconv.FormatBool(e.AvailableOnBrokers),
		e.CollectionDate,
		e.Date,
		e.StrikeDate,
		e.StrikePeriod,
	}
}

// Row renders the record as one CSV row matching MarketColumns.
func (m *MarketRecord) Row() []string {
	return []string{
		m.Ticker,
		m.EventTicker,
		m.MarketType,
		m.Title,
		m.Subtitle,
		m.YesSubTitle,
		m.NoSubTitle,
		m.OpenTime,
		m.CloseTime,
		m.ExpectedExpirationTime,
		m.ExpirationTime,
		m.LatestExpirationTime,
		strconv.Itoa(m.SettlementTimerSeconds),
		m.Status,
		m.ResponsePriceUnits,
		strconv.Itoa(m.NotionalValue),
		m.NotionalValueDollars,
		strconv.Itoa(m.YesBid),
		m.YesBidDollars,
		strconv.Itoa(m.YesAsk),
		m.YesAskDollars,
		strconv.Itoa(m.NoBid),
		m.NoBidDollars,
		strconv.Itoa(m.NoAsk),
		m.NoAskDollars,
		strconv.Itoa(m.LastPrice),
		m.LastPriceDollars,
		strconv.Itoa(m.PreviousYesBid),
		m.PreviousYesBidDollars,
		strconv.Itoa(m.PreviousYesAsk),
		m.PreviousYesAskDollars,
		strconv.Itoa(m.PreviousPrice),
		m.PreviousPriceDollars,
		strconv.FormatInt(m.Volume, 10),
		strconv.FormatInt(m.Volume24h, 10),
		strconv.FormatInt(m.Liquidity, 10),
		m.LiquidityDollars,
		strconv.FormatInt(m.OpenInterest, 10),
		m.Result,
		strconv.FormatBool(m.CanCloseEarly),
		m.ExpirationValue,
		m.Category,
		strconv.FormatInt(m.RiskLimitCents, 10),
		m.StrikeType,
		m.CustomStrike,
		m.RulesPrimary,
		m.RulesSecondary,
		strconv.Itoa(m.TickSize),
		m.MVECollectionTicker,
		m.MVESelectedLegs,
		m.CollectionDate,
		m.Date,
		formatOptFloat(m.FloorStrike),
		m.EarlyCloseCondition,
		formatOptFloat(m.CapStrike),
		m.PrimaryParticipantKey,
		m.FeeWaiverExpirationTime,
	}
}

// formatOptFloat renders an optional strike as a CSV cell; nil means the
// market has no strike of that kind and the cell stays empty.
func formatOptFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
