package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks that all required fields are set and values are valid.
// The Dune API key is deliberately not checked here; the collector runs
// without one, and the uploader rejects an empty key itself.
func (c *Config) Validate() error {
	if c.Kalshi.BaseURL == "" {
		return errors.New("kalshi.base_url is required")
	}
	if c.Kalshi.MaxRetries < 0 {
		return errors.New("kalshi.max_retries must be >= 0")
	}
	if c.Kalshi.PageDelay < 0 {
		return errors.New("kalshi.page_delay must be >= 0")
	}
	if c.Kalshi.EventPageLimit < 1 {
		return errors.New("kalshi.event_page_limit must be >= 1")
	}
	if c.Kalshi.MarketPageLimit < 1 {
		return errors.New("kalshi.market_page_limit must be >= 1")
	}
	if c.Kalshi.MaxPages < 1 {
		return errors.New("kalshi.max_pages must be >= 1")
	}

	if c.Dune.BaseURL == "" {
		return errors.New("dune.base_url is required")
	}
	if c.Dune.Namespace == "" {
		return errors.New("dune.namespace is required")
	}
	if c.Dune.EventsTable == "" {
		return errors.New("dune.events_table is required")
	}
	if c.Dune.MarketsTable == "" {
		return errors.New("dune.markets_table is required")
	}
	if c.Dune.MaxRetries < 0 {
		return errors.New("dune.max_retries must be >= 0")
	}

	if c.Storage.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}

	if c.Archive.Enabled {
		if err := c.Archive.Postgres.validate("archive.postgres"); err != nil {
			return err
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("logging.output must be console, file, or both, got %q", c.Logging.Output)
	}
	if c.Logging.Output != "console" && c.Logging.Dir == "" {
		return errors.New("logging.dir is required for file output")
	}

	if c.Run.CollectionDate != "" {
		if _, err := time.Parse("2006-01-02", c.Run.CollectionDate); err != nil {
			return fmt.Errorf("run.collection_date must be YYYY-MM-DD, got %q", c.Run.CollectionDate)
		}
	}
	if c.Run.StageTimeout <= 0 {
		return errors.New("run.stage_timeout must be > 0")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
