package archive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/config"
)

// Mirror writes snapshot records into the local archive database.
type Mirror struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewMirror connects to the archive database and creates the archive
// tables if this is the first run against it.
func NewMirror(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Mirror, error) {
	pool, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	m := &Mirror{
		pool:   pool,
		logger: logger,
	}

	if err := m.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return m, nil
}

// EnsureSchema creates the archive tables if they do not exist.
func (m *Mirror) EnsureSchema(ctx context.Context) error {
	for _, ddl := range []string{createEventsTableSQL, createMarketsTableSQL} {
		if _, err := m.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("ensure archive schema: %w", err)
		}
	}
	return nil
}

// Ping verifies the connection is healthy.
func (m *Mirror) Ping(ctx context.Context) error {
	return m.pool.Ping(ctx)
}

// Close closes the connection pool.
func (m *Mirror) Close() {
	m.pool.Close()
}
