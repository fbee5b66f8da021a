package config

import "time"

// Config is the root configuration for the pipeline binaries.
type Config struct {
	Kalshi  KalshiConfig  `yaml:"kalshi" envconfig:"KALSHI"`
	Dune    DuneConfig    `yaml:"dune" envconfig:"DUNE"`
	Storage StorageConfig `yaml:"storage" envconfig:"STORAGE"`
	Archive ArchiveConfig `yaml:"archive" envconfig:"ARCHIVE"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Run     RunConfig     `yaml:"run" envconfig:"RUN"`
}

// KalshiConfig holds source API settings.
type KalshiConfig struct {
	BaseURL      string        `yaml:"base_url" envconfig:"BASE_URL"`
	APIKey       string        `yaml:"api_key" envconfig:"API_KEY"` // optional; market data is public
	Timeout      time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	MaxRetries   int           `yaml:"max_retries" envconfig:"MAX_RETRIES"`
	RetryBackoff time.Duration `yaml:"retry_backoff" envconfig:"RETRY_BACKOFF"`

	// Pagination
	PageDelay       time.Duration `yaml:"page_delay" envconfig:"PAGE_DELAY"`
	EventPageLimit  int           `yaml:"event_page_limit" envconfig:"EVENT_PAGE_LIMIT"`
	MarketPageLimit int           `yaml:"market_page_limit" envconfig:"MARKET_PAGE_LIMIT"`
	MaxPages        int           `yaml:"max_pages" envconfig:"MAX_PAGES"`
}

// DuneConfig holds destination warehouse settings.
type DuneConfig struct {
	BaseURL      string        `yaml:"base_url" envconfig:"BASE_URL"`
	APIKey       string        `yaml:"api_key" envconfig:"API_KEY"` // DUNE_API_KEY
	Namespace    string        `yaml:"namespace" envconfig:"NAMESPACE"`
	EventsTable  string        `yaml:"events_table" envconfig:"EVENTS_TABLE"`
	MarketsTable string        `yaml:"markets_table" envconfig:"MARKETS_TABLE"`
	IsPrivate    bool          `yaml:"is_private" envconfig:"IS_PRIVATE"`
	Timeout      time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	MaxRetries   int           `yaml:"max_retries" envconfig:"MAX_RETRIES"`
	RetryBackoff time.Duration `yaml:"retry_backoff" envconfig:"RETRY_BACKOFF"`

	// AppendMode skips the table clear so repeated runs accumulate rows.
	AppendMode bool `yaml:"append_mode" envconfig:"APPEND_MODE"`

	// EntityPause is the courtesy wait between the two table uploads.
	EntityPause time.Duration `yaml:"entity_pause" envconfig:"ENTITY_PAUSE"`
}

// StorageConfig holds snapshot file settings.
type StorageConfig struct {
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR"`
}

// ArchiveConfig holds the optional local Postgres mirror settings.
type ArchiveConfig struct {
	Enabled  bool     `yaml:"enabled" envconfig:"ENABLED"`
	Postgres DBConfig `yaml:"postgres" envconfig:"POSTGRES"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host" envconfig:"HOST"`
	Port     int    `yaml:"port" envconfig:"PORT"`
	Name     string `yaml:"name" envconfig:"NAME"`
	User     string `yaml:"user" envconfig:"USER"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	SSLMode  string `yaml:"ssl_mode" envconfig:"SSL_MODE"`
	MaxConns int    `yaml:"max_conns" envconfig:"MAX_CONNS"`
	MinConns int    `yaml:"min_conns" envconfig:"MIN_CONNS"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" envconfig:"FORMAT"` // text, json
	Output string `yaml:"output" envconfig:"OUTPUT"` // console, file, both
	Dir    string `yaml:"dir" envconfig:"DIR"`
}

// RunConfig holds per-run settings shared by the binaries.
type RunConfig struct {
	// CollectionDate (YYYY-MM-DD) selects which day's snapshots the
	// uploader reads. Empty means today.
	CollectionDate string `yaml:"collection_date" envconfig:"COLLECTION_DATE"`

	// StageTimeout bounds each pipeline stage.
	StageTimeout time.Duration `yaml:"stage_timeout" envconfig:"STAGE_TIMEOUT"`
}
