// Package store reads and writes the dated CSV snapshot files that
// connect the collector to the uploader.
package store
