// Package model defines the snapshot record types shared by the
// collector, the CSV store, and the uploader.
//
// Conventions:
//   - Cent prices: plain ints as reported by the exchange
//   - Dollar prices: strings passed through unmodified (sub-penny precision)
//   - Timestamps: ISO 8601 strings passed through unmodified
//   - Column order is fixed and identical in CSV files and warehouse schemas
package model
