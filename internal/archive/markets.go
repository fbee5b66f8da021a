package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/model"
)

const createMarketsTableSQL = `
	CREATE TABLE IF NOT EXISTS kalshi_markets (
		ticker                     TEXT NOT NULL,
		event_ticker               TEXT NOT NULL,
		market_type                TEXT,
		title                      TEXT,
		subtitle                   TEXT,
		yes_sub_title              TEXT,
		no_sub_title               TEXT,
		open_time                  TEXT,
		close_time                 TEXT,
		expected_expiration_time   TEXT,
		expiration_time            TEXT,
		latest_expiration_time     TEXT,
		settlement_timer_seconds   INTEGER,
		status                     TEXT,
		response_price_units       TEXT,
		notional_value             INTEGER,
		notional_value_dollars     TEXT,
		yes_bid                    INTEGER,
		yes_bid_dollars            TEXT,
		yes_ask                    INTEGER,
		yes_ask_dollars            TEXT,
		no_bid                     INTEGER,
		no_bid_dollars             TEXT,
		no_ask                     INTEGER,
		no_ask_dollars             TEXT,
		last_price                 INTEGER,
		last_price_dollars         TEXT,
		previous_yes_bid           INTEGER,
		previous_yes_bid_dollars   TEXT,
		previous_yes_ask           INTEGER,
		previous_yes_ask_dollars   TEXT,
		previous_price             INTEGER,
		previous_price_dollars     TEXT,
		volume                     BIGINT,
		volume_24h                 BIGINT,
		liquidity                  BIGINT,
		liquidity_dollars          TEXT,
		open_interest              BIGINT,
		result                     TEXT,
		can_close_early            BOOLEAN,
		expiration_value           TEXT,
		category                   TEXT,
		risk_limit_cents           BIGINT,
		strike_type                TEXT,
		custom_strike              TEXT,
		rules_primary              TEXT,
		rules_secondary            TEXT,
		tick_size                  INTEGER,
		mve_collection_ticker      TEXT,
		mve_selected_legs          TEXT,
		collection_date            TIMESTAMPTZ NOT NULL,
		date                       DATE NOT NULL,
		floor_strike               DOUBLE PRECISION,
		early_close_condition      TEXT,
		cap_strike                 DOUBLE PRECISION,
		primary_participant_key    TEXT,
		fee_waiver_expiration_time TEXT,
		PRIMARY KEY (date, ticker)
	)`

const insertMarketSQL = `
	INSERT INTO kalshi_markets (
		ticker, event_ticker, market_type, title, subtitle,
		yes_sub_title, no_sub_title, open_time, close_time,
		expected_expiration_time, expiration_time, latest_expiration_time,
		settlement_timer_seconds, status, response_price_units,
		notional_value, notional_value_dollars,
		yes_bid, yes_bid_dollars, yes_ask, yes_ask_dollars,
		no_bid, no_bid_dollars, no_ask, no_ask_dollars,
		last_price, last_price_dollars,
		previous_yes_bid, previous_yes_bid_dollars,
		previous_yes_ask, previous_yes_ask_dollars,
		previous_price, previous_price_dollars,
		volume, volume_24h, liquidity, liquidity_dollars, open_interest,
		result, can_close_early, expiration_value, category,
		risk_limit_cents, strike_type, custom_strike,
		rules_primary, rules_secondary, tick_size,
		mve_collection_ticker, mve_selected_legs,
		collection_date, date, floor_strike, early_close_condition,
		cap_strike, primary_participant_key, fee_waiver_expiration_time
	)
	VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
		$41, $42, $43, $44, $45, $46, $47, $48, $49, $50,
		$51, $52, $53, $54, $55, $56, $57
	)
	ON CONFLICT (date, ticker) DO NOTHING`

// InsertMarkets inserts market records with ON CONFLICT DO NOTHING, so
// a re-run of the same day never duplicates rows. It returns the
// number of rows actually written.
func (m *Mirror) InsertMarkets(ctx context.Context, markets []model.MarketRecord) (int, error) {
	if len(markets) == 0 {
		return 0, nil
	}

	start := time.Now()
	batch := &pgx.Batch{}
	for i := range markets {
		batch.Queue(insertMarketSQL, marketArgs(&markets[i])...)
	}

	results := m.pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range markets {
		ct, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert market: %w", err)
		}
		if ct.RowsAffected() > 0 {
			inserted++
		}
	}

	m.logger.Debug("archived markets",
		"total", len(markets),
		"inserted", inserted,
		"duration", time.Since(start),
	)

	return inserted, nil
}

// marketArgs lists the insert parameters in column order. The strike
// pointers pass through as-is; nil becomes NULL.
func marketArgs(r *model.MarketRecord) []any {
	return []any{
		r.Ticker,
		r.EventTicker,
		r.MarketType,
		r.Title,
		r.Subtitle,
		r.YesSubTitle,
		r.NoSubTitle,
		r.OpenTime,
		r.CloseTime,
		r.ExpectedExpirationTime,
		r.ExpirationTime,
		r.LatestExpirationTime,
		r.SettlementTimerSeconds,
		r.Status,
		r.ResponsePriceUnits,
		r.NotionalValue,
		r.NotionalValueDollars,
		r.YesBid,
		r.YesBidDollars,
		r.YesAsk,
		r.YesAskDollars,
		r.NoBid,
		r.NoBidDollars,
		r.NoAsk,
		r.NoAskDollars,
		r.LastPrice,
		r.LastPriceDollars,
		r.PreviousYesBid,
		r.PreviousYesBidDollars,
		r.PreviousYesAsk,
		r.PreviousYesAskDollars,
		r.PreviousPrice,
		r.PreviousPriceDollars,
		r.Volume,
		r.Volume24h,
		r.Liquidity,
		r.LiquidityDollars,
		r.OpenInterest,
		r.Result,
		r.CanCloseEarly,
		r.ExpirationValue,
		r.Category,
		r.RiskLimitCents,
		r.StrikeType,
		r.CustomStrike,
		r.RulesPrimary,
		r.RulesSecondary,
		r.TickSize,
		r.MVECollectionTicker,
		r.MVESelectedLegs,
		r.CollectionDate,
		r.Date,
		r.FloorStrike,
		r.EarlyCloseCondition,
		r.CapStrike,
		r.PrimaryParticipantKey,
		r.FeeWaiverExpirationTime,
	}
}
