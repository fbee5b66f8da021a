// Package archive mirrors daily snapshots into a local PostgreSQL
// database. The mirror is optional: the CSV snapshot is the canonical
// output of a collection run, and archive failures are logged without
// failing the run.
package archive
