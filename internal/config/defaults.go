package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultKalshiBaseURL = "https://api.elections.kalshi.com/trade-api/v2"
	DefaultKalshiTimeout = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryBackoff  = 1 * time.Second

	DefaultPageDelay       = 1500 * time.Millisecond
	DefaultEventPageLimit  = 200
	DefaultMarketPageLimit = 1000
	DefaultMaxPages        = 50

	DefaultDuneBaseURL  = "https://api.dune.com/api/v1"
	DefaultNamespace    = "ghost_in_the_code"
	DefaultEventsTable  = "kalshi_events"
	DefaultMarketsTable = "kalshi_markets"
	DefaultDuneTimeout  = 60 * time.Second
	DefaultEntityPause  = 2 * time.Second

	DefaultDataDir = "data"

	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 10
	DefaultMinConns  = 2

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultLogOutput = "console"
	DefaultLogDir    = "logs"

	DefaultStageTimeout = 10 * time.Minute
)

func (c *Config) applyDefaults() {
	// Kalshi defaults
	if c.Kalshi.BaseURL == "" {
		c.Kalshi.BaseURL = DefaultKalshiBaseURL
	}
	if c.Kalshi.Timeout == 0 {
		c.Kalshi.Timeout = DefaultKalshiTimeout
	}
	if c.Kalshi.MaxRetries == 0 {
		c.Kalshi.MaxRetries = DefaultMaxRetries
	}
	if c.Kalshi.RetryBackoff == 0 {
		c.Kalshi.RetryBackoff = DefaultRetryBackoff
	}
	if c.Kalshi.PageDelay == 0 {
		c.Kalshi.PageDelay = DefaultPageDelay
	}
	if c.Kalshi.EventPageLimit == 0 {
		c.Kalshi.EventPageLimit = DefaultEventPageLimit
	}
	if c.Kalshi.MarketPageLimit == 0 {
		c.Kalshi.MarketPageLimit = DefaultMarketPageLimit
	}
	if c.Kalshi.MaxPages == 0 {
		c.Kalshi.MaxPages = DefaultMaxPages
	}

	// Dune defaults
	if c.Dune.BaseURL == "" {
		c.Dune.BaseURL = DefaultDuneBaseURL
	}
	if c.Dune.Namespace == "" {
		c.Dune.Namespace = DefaultNamespace
	}
	if c.Dune.EventsTable == "" {
		c.Dune.EventsTable = DefaultEventsTable
	}
	if c.Dune.MarketsTable == "" {
		c.Dune.MarketsTable = DefaultMarketsTable
	}
	if c.Dune.Timeout == 0 {
		c.Dune.Timeout = DefaultDuneTimeout
	}
	if c.Dune.MaxRetries == 0 {
		c.Dune.MaxRetries = DefaultMaxRetries
	}
	if c.Dune.RetryBackoff == 0 {
		c.Dune.RetryBackoff = DefaultRetryBackoff
	}
	if c.Dune.EntityPause == 0 {
		c.Dune.EntityPause = DefaultEntityPause
	}

	// Storage defaults
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = DefaultDataDir
	}

	// Archive defaults apply only when the mirror is on; an untouched
	// section must not fail validation.
	if c.Archive.Enabled {
		applyDBDefaults(&c.Archive.Postgres)
	}

	// Logging defaults
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = DefaultLogOutput
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = DefaultLogDir
	}

	// Run defaults
	if c.Run.StageTimeout == 0 {
		c.Run.StageTimeout = DefaultStageTimeout
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
