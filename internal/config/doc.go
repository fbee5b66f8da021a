// Package config handles YAML configuration loading with environment
// variable overrides.
//
// Configuration files support ${VAR} syntax for interpolation. After the
// file is read, matching environment variables replace file values
// (DUNE_API_KEY, DUNE_NAMESPACE, COLLECTION_DATE, APPEND_MODE, and the
// section-prefixed forms like KALSHI_PAGE_DELAY or STORAGE_DATA_DIR),
// then named defaults fill anything still unset. The config file itself
// is optional; every binary runs on defaults plus environment alone.
package config
