package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Entity names for snapshot files.
const (
	EntityEvents  = "events"
	EntityMarkets = "markets"
)

// Store manages dated snapshot CSV files under a data directory.
type Store struct {
	dataDir string
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a snapshot store rooted at dataDir. The directory is
// created on the first write.
func New(dataDir string, opts ...Option) *Store {
	s := &Store{
		dataDir: dataDir,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filename returns the snapshot file name for an entity and a
// YYYY-MM-DD date, e.g. kalshi_markets_20250825.csv.
func Filename(entity, date string) string {
	return fmt.Sprintf("kalshi_%s_%s.csv", entity, strings.ReplaceAll(date, "-", ""))
}

// Path returns the full path of an entity's snapshot for a date.
func (s *Store) Path(entity, date string) string {
	return filepath.Join(s.dataDir, Filename(entity, date))
}

// Encode renders a header and rows as CSV bytes.
func Encode(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encode row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteSnapshot writes one entity snapshot for a date. The file is
// written to a temp name first and renamed into place, so readers never
// see a partial snapshot. Returns the final path.
func (s *Store) WriteSnapshot(entity, date string, header []string, rows [][]string) (string, error) {
	data, err := Encode(header, rows)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	final := s.Path(entity, date)
	tmp, err := os.CreateTemp(s.dataDir, Filename(entity, date)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename snapshot: %w", err)
	}

	s.logger.Info("snapshot written",
		"entity", entity,
		"path", final,
		"rows", len(rows),
		"bytes", len(data),
	)

	return final, nil
}

// ReadSnapshot reads an entity snapshot for a date and verifies its
// header matches wantHeader exactly. Returns the data rows. A missing
// snapshot surfaces as an error satisfying errors.Is(err, os.ErrNotExist).
func (s *Store) ReadSnapshot(entity, date string, wantHeader []string) ([][]string, error) {
	path := s.Path(entity, date)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(wantHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("snapshot %s is empty", path)
	}

	header := records[0]
	for i, col := range wantHeader {
		if header[i] != col {
			return nil, fmt.Errorf("snapshot %s: header column %d = %q, want %q", path, i, header[i], col)
		}
	}

	return records[1:], nil
}
