package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/model"
)

const createEventsTableSQL = `
	CREATE TABLE IF NOT EXISTS kalshi_events (
		event_ticker           TEXT NOT NULL,
		series_ticker          TEXT,
		sub_title              TEXT,
		title                  TEXT NOT NULL,
		collateral_return_type TEXT,
		mutually_exclusive     BOOLEAN,
		category               TEXT,
		price_level_structure  TEXT,
		available_on_brokers   BOOLEAN,
		collection_date        TIMESTAMPTZ NOT NULL,
		date                   DATE NOT NULL,
		strike_date            TEXT,
		strike_period          TEXT,
		PRIMARY KEY (date, event_ticker)
	)`

const insertEventSQL = `
	INSERT INTO kalshi_events (
		event_ticker, series_ticker, sub_title, title,
		collateral_return_type, mutually_exclusive, category,
		price_level_structure, available_on_brokers,
		collection_date, date, strike_date, strike_period
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (date, event_ticker) DO NOTHING`

// InsertEvents inserts event records with ON CONFLICT DO NOTHING, so a
// re-run of the same day never duplicates rows. It returns the number
// of rows actually written.
func (m *Mirror) InsertEvents(ctx context.Context, events []model.EventRecord) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	start := time.Now()
	batch := &pgx.Batch{}
	for i := range events {
		batch.Queue(insertEventSQL, eventArgs(&events[i])...)
	}

	results := m.pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range events {
		ct, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert event: %w", err)
		}
		if ct.RowsAffected() > 0 {
			inserted++
		}
	}

	m.logger.Debug("archived events",
		"total", len(events),
		"inserted", inserted,
		"duration", time.Since(start),
	)

	return inserted, nil
}

// eventArgs lists the insert parameters in column order.
func eventArgs(e *model.EventRecord) []any {
	return []any{
		e.EventTicker,
		e.SeriesTicker,
		e.SubTitle,
		e.Title,
		e.CollateralReturnType,
		e.MutuallyExclusive,
		e.Category,
		e.PriceLevelStructure,
		e.AvailableOnBrokers,
		e.CollectionDate,
		e.Date,
		e.StrikeDate,
		e.StrikePeriod,
	}
}
