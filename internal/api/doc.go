// Package api provides the Kalshi REST API client used by the collector.
//
// Endpoints:
//   - Production: https://api.elections.kalshi.com/trade-api/v2
//   - Demo: https://demo-api.kalshi.co/trade-api/v2
//
// The market data endpoints (/exchange/status, /events, /markets) are
// public and need no API key. Listings are cursor-paginated; the client
// exposes single-page fetches and leaves pagination to the caller.
package api
