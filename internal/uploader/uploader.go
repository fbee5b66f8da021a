package uploader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/dune"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/model"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/store"
)

// Config controls an upload run.
type Config struct {
	Namespace    string
	EventsTable  string
	MarketsTable string
	IsPrivate    bool

	// AppendMode skips the clear step and appends to existing rows.
	// Off by default; the daily job replaces the whole table.
	AppendMode bool

	// Date selects which day's snapshots to upload, YYYY-MM-DD. Empty
	// means today.
	Date string

	// EntityPause is the wait between the events and markets uploads.
	EntityPause time.Duration
}

// Uploader reads snapshots and pushes them to the destination tables.
type Uploader struct {
	cfg    Config
	client *dune.Client
	store  *store.Store
	logger *slog.Logger
}

// New creates an Uploader. The destination rejects unauthenticated
// requests, so a client without an API key is refused here.
func New(cfg Config, client *dune.Client, st *store.Store, logger *slog.Logger) (*Uploader, error) {
	if !client.HasAPIKey() {
		return nil, errors.New("dune api key is required (set DUNE_API_KEY)")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{
		cfg:    cfg,
		client: client,
		store:  st,
		logger: logger,
	}, nil
}

// Summary reports what an upload run did.
type Summary struct {
	Date     string
	Events   EntityResult
	Markets  EntityResult
	Duration time.Duration
}

// EntityResult reports one entity's upload outcome.
type EntityResult struct {
	Uploaded bool
	Rows     int
	Skipped  bool // snapshot missing for the selected date
}

// entitySpec binds an entity to its destination table and layout.
type entitySpec struct {
	entity      string
	table       string
	header      []string
	schema      []dune.ColumnSchema
	description string
}

// Run uploads both entities for the selected date. A missing snapshot
// skips its entity with a warning; a failed upload attempt aborts the
// run. Both snapshots missing is an error, the collector should have
// produced at least one.
func (u *Uploader) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	date := u.cfg.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	u.logger.Info("starting upload run",
		"date", date,
		"namespace", u.cfg.Namespace,
		"append_mode", u.cfg.AppendMode,
	)

	summary := &Summary{Date: date}

	events, err := u.uploadEntity(ctx, entitySpec{
		entity:      store.EntityEvents,
		table:       u.cfg.EventsTable,
		header:      model.EventColumns,
		schema:      dune.EventsSchema(),
		description: dune.EventsTableDescription,
	}, date)
	if err != nil {
		return nil, err
	}
	summary.Events = events

	if !events.Skipped && u.cfg.EntityPause > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(u.cfg.EntityPause):
		}
	}

	markets, err := u.uploadEntity(ctx, entitySpec{
		entity:      store.EntityMarkets,
		table:       u.cfg.MarketsTable,
		header:      model.MarketColumns,
		schema:      dune.MarketsSchema(),
		description: dune.MarketsTableDescription,
	}, date)
	if err != nil {
		return nil, err
	}
	summary.Markets = markets

	if summary.Events.Skipped && summary.Markets.Skipped {
		return nil, fmt.Errorf("no snapshots found for %s", date)
	}

	summary.Duration = time.Since(start)
	u.logger.Info("upload run complete",
		"date", date,
		"events_rows", summary.Events.Rows,
		"markets_rows", summary.Markets.Rows,
		"duration", summary.Duration,
	)

	return summary, nil
}

// uploadEntity pushes one snapshot: ensure the table exists, clear it,
// then insert the full CSV. The clear must succeed before the insert
// is attempted.
func (u *Uploader) uploadEntity(ctx context.Context, spec entitySpec, date string) (EntityResult, error) {
	rows, err := u.store.ReadSnapshot(spec.entity, date, spec.header)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			u.logger.Warn("snapshot not found, skipping entity",
				"entity", spec.entity,
				"path", u.store.Path(spec.entity, date),
			)
			return EntityResult{Skipped: true}, nil
		}
		return EntityResult{}, fmt.Errorf("read %s snapshot: %w", spec.entity, err)
	}

	created, err := u.client.EnsureTable(ctx, dune.CreateTableRequest{
		Namespace:   u.cfg.Namespace,
		TableName:   spec.table,
		Description: spec.description,
		IsPrivate:   u.cfg.IsPrivate,
		Schema:      spec.schema,
	})
	if err != nil {
		return EntityResult{}, fmt.Errorf("ensure table %s: %w", spec.table, err)
	}
	if created {
		u.logger.Info("created destination table",
			"namespace", u.cfg.Namespace,
			"table", spec.table,
		)
	}

	if u.cfg.AppendMode {
		u.logger.Info("append mode, skipping clear", "table", spec.table)
	} else if err := u.client.ClearTable(ctx, u.cfg.Namespace, spec.table); err != nil {
		return EntityResult{}, fmt.Errorf("clear table %s: %w", spec.table, err)
	}

	data, err := store.Encode(spec.header, rows)
	if err != nil {
		return EntityResult{}, fmt.Errorf("encode %s rows: %w", spec.entity, err)
	}

	result, err := u.client.InsertCSV(ctx, u.cfg.Namespace, spec.table, data)
	if err != nil {
		return EntityResult{}, fmt.Errorf("insert into %s: %w", spec.table, err)
	}

	if result.RowsWritten != len(rows) {
		return EntityResult{}, fmt.Errorf("insert into %s wrote %d rows, expected %d",
			spec.table, result.RowsWritten, len(rows))
	}

	u.logger.Info("entity uploaded",
		"entity", spec.entity,
		"table", spec.table,
		"rows", result.RowsWritten,
		"bytes", result.BytesWritten,
	)

	return EntityResult{Uploaded: true, Rows: result.RowsWritten}, nil
}
