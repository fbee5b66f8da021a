package api

import (
	"bytes"
	"encoding/json"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/model"
)

// ToRecord converts an APIEvent to a stamped snapshot record.
func (e *APIEvent) ToRecord(stamp model.Stamp) model.EventRecord {
	return model.EventRecord{
		EventTicker:          e.EventTicker,
		SeriesTicker:         e.SeriesTicker,
		SubTitle:             e.SubTitle,
		Title:                e.Title,
		CollateralReturnType: e.CollateralReturnType,
		MutuallyExclusive:    e.MutuallyExclusive,
		Category:             e.Category,
		PriceLevelStructure:  e.PriceLevelStructure,
		AvailableOnBrokers:   e.AvailableOnBrokers,
		Stamp:                stamp,
		StrikeDate:           e.StrikeDate,
		StrikePeriod:         e.StrikePeriod,
	}
}

// ToRecord converts an APIMarket to a stamped snapshot record.
func (m *APIMarket) ToRecord(stamp model.Stamp) model.MarketRecord {
	return model.MarketRecord{
		Ticker:      m.Ticker,
		EventTicker: m.EventTicker,
		MarketType:  m.MarketType,
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		YesSubTitle: m.YesSubTitle,
		NoSubTitle:  m.NoSubTitle,

		OpenTime:               m.OpenTime,
		CloseTime:              m.CloseTime,
		ExpectedExpirationTime: m.ExpectedExpirationTime,
		ExpirationTime:         m.ExpirationTime,
		LatestExpirationTime:   m.LatestExpirationTime,

		SettlementTimerSeconds: m.SettlementTimerSeconds,
		Status:                 m.Status,
		ResponsePriceUnits:     m.ResponsePriceUnits,

		NotionalValue:        m.NotionalValue,
		NotionalValueDollars: m.NotionalValueDollars,

		YesBid:                m.YesBid,
		YesBidDollars:         m.YesBidDollars,
		YesAsk:                m.YesAsk,
		YesAskDollars:         m.YesAskDollars,
		NoBid:                 m.NoBid,
		NoBidDollars:          m.NoBidDollars,
		NoAsk:                 m.NoAsk,
		NoAskDollars:          m.NoAskDollars,
		LastPrice:             m.LastPrice,
		LastPriceDollars:      m.LastPriceDollars,
		PreviousYesBid:        m.PreviousYesBid,
		PreviousYesBidDollars: m.PreviousYesBidDollars,
		PreviousYesAsk:        m.PreviousYesAsk,
		PreviousYesAskDollars: m.PreviousYesAskDollars,
		PreviousPrice:         m.PreviousPrice,
		PreviousPriceDollars:  m.PreviousPriceDollars,

		Volume:           m.Volume,
		Volume24h:        m.Volume24h,
		Liquidity:        m.Liquidity,
		LiquidityDollars: m.LiquidityDollars,
		OpenInterest:     m.OpenInterest,

		Result:          m.Result,
		CanCloseEarly:   m.CanCloseEarly,
		ExpirationValue: m.ExpirationValue,

		Category:       m.Category,
		RiskLimitCents: m.RiskLimitCents,

		StrikeType:   m.StrikeType,
		CustomStrike: rawJSONString(m.CustomStrike),
		FloorStrike:  m.FloorStrike,
		CapStrike:    m.CapStrike,

		RulesPrimary:   m.RulesPrimary,
		RulesSecondary: m.RulesSecondary,
		TickSize:       m.TickSize,

		MVECollectionTicker: m.MVECollectionTicker,
		MVESelectedLegs:     rawJSONString(m.MVESelectedLegs),

		Stamp: stamp,

		EarlyCloseCondition:     m.EarlyCloseCondition,
		PrimaryParticipantKey:   m.PrimaryParticipantKey,
		FeeWaiverExpirationTime: m.FeeWaiverExpirationTime,
	}
}

// rawJSONString renders a raw JSON value as a compact CSV cell.
// Absent and null values become the empty cell.
func rawJSONString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
