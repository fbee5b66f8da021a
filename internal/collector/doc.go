// Package collector pulls the day's open events and markets from the
// Kalshi REST API and writes them as dated CSV snapshots. A page
// request that fails after retries aborts the run; partially fetched
// entities are discarded rather than written short.
package collector
