// Package uploader pushes the day's CSV snapshots into Dune Analytics
// tables. Each entity is cleared and re-inserted in full, so a re-run
// of the same day replaces rather than duplicates. The insert never
// runs when the clear fails; an empty table is recoverable by re-run,
// duplicated rows are not.
package uploader
