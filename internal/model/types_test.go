package model

import (
	"testing"
	"time"
)

// TestNewStamp validates collection timestamp formatting.
func TestNewStamp(t *testing.T) {
	t.Run("formats both representations in UTC", func(t *testing.T) {
		instant := time.Date(2025, 8, 25, 14, 30, 45, 0, time.UTC)
		s := NewStamp(instant)

		if s.CollectionDate != "2025-08-25T14:30:45Z" {
			t.Errorf("CollectionDate = %q, want %q", s.CollectionDate, "2025-08-25T14:30:45Z")
		}
		if s.Date != "2025-08-25" {
			t.Errorf("Date = %q, want %q", s.Date, "2025-08-25")
		}
	})

	t.Run("normalizes non-UTC instants", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*3600)
		instant := time.Date(2025, 8, 25, 22, 0, 0, 0, loc)
		s := NewStamp(instant)

		// 22:00 UTC-5 is 03:00 the next day in UTC.
		if s.Date != "2025-08-26" {
			t.Errorf("Date = %q, want %q", s.Date, "2025-08-26")
		}
		if s.CollectionDate != "2025-08-26T03:00:00Z" {
			t.Errorf("CollectionDate = %q, want %q", s.CollectionDate, "2025-08-26T03:00:00Z")
		}
	})
}

// TestEventRecordValidate checks identifier requirements.
func TestEventRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  EventRecord
		wantErr bool
	}{
		{"complete", EventRecord{EventTicker: "PRES-2024", Title: "Presidential Election"}, false},
		{"missing event_ticker", EventRecord{Title: "Presidential Election"}, true},
		{"missing title", EventRecord{EventTicker: "PRES-2024"}, true},
		{"empty", EventRecord{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestMarketRecordValidate checks identifier requirements.
func TestMarketRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  MarketRecord
		wantErr bool
	}{
		{"complete", MarketRecord{Ticker: "PRES-2024-DEM", EventTicker: "PRES-2024"}, false},
		{"missing ticker", MarketRecord{EventTicker: "PRES-2024"}, true},
		{"missing event_ticker", MarketRecord{Ticker: "PRES-2024-DEM"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestColumnCounts pins the snapshot schemas.
func TestColumnCounts(t *testing.T) {
	if got := len(EventColumns); got != 13 {
		t.Errorf("len(EventColumns) = %d, want 13", got)
	}
	if got := len(MarketColumns); got != 57 {
		t.Errorf("len(MarketColumns) = %d, want 57", got)
	}
}

// TestEventRow checks that rows line up with EventColumns.
func TestEventRow(t *testing.T) {
	e := EventRecord{
		EventTicker:          "PRES-2024",
		SeriesTicker:         "PRES",
		SubTitle:             "Who wins?",
		Title:                "Presidential Election",
		CollateralReturnType: "standard",
		MutuallyExclusive:    true,
		Category:             "Politics",
		AvailableOnBrokers:   false,
		Stamp: Stamp{
			CollectionDate: "2025-08-25T14:30:45Z",
			Date:           "2025-08-25",
		},
		StrikePeriod: "2024",
	}

	row := e.Row()
	if len(row) != len(EventColumns) {
		t.Fatalf("len(Row()) = %d, want %d", len(row), len(EventColumns))
	}

	cells := map[string]string{}
	for i, col := range EventColumns {
		cells[col] = row[i]
	}

	if cells["event_ticker"] != "PRES-2024" {
		t.Errorf("event_ticker = %q, want %q", cells["event_ticker"], "PRES-2024")
	}
	if cells["mutually_exclusive"] != "true" {
		t.Errorf("mutually_exclusive = %q, want %q", cells["mutually_exclusive"], "true")
	}
	if cells["available_on_brokers"] != "false" {
		t.Errorf("available_on_brokers = %q, want %q", cells["available_on_brokers"], "false")
	}
	if cells["collection_date"] != "2025-08-25T14:30:45Z" {
		t.Errorf("collection_date = %q, want %q", cells["collection_date"], "2025-08-25T14:30:45Z")
	}
	if cells["date"] != "2025-08-25" {
		t.Errorf("date = %q, want %q", cells["date"], "2025-08-25")
	}
	if cells["strike_date"] != "" {
		t.Errorf("strike_date = %q, want empty", cells["strike_date"])
	}
}

// TestMarketRow checks that rows line up with MarketColumns.
func TestMarketRow(t *testing.T) {
	floor := 3.5
	m := MarketRecord{
		Ticker:           "PRES-2024-DEM",
		EventTicker:      "PRES-2024",
		MarketType:       "binary",
		Title:            "Democratic candidate wins",
		OpenTime:         "2024-01-01T00:00:00Z",
		YesBid:           52,
		YesBidDollars:    "0.5250",
		Volume:           1000,
		Volume24h:        500,
		Liquidity:        250000,
		LiquidityDollars: "2500.00",
		OpenInterest:     200,
		CanCloseEarly:    true,
		RiskLimitCents:   2500000,
		TickSize:         1,
		FloorStrike:      &floor,
		Stamp: Stamp{
			CollectionDate: "2025-08-25T14:30:45Z",
			Date:           "2025-08-25",
		},
	}

	row := m.Row()
	if len(row) != len(MarketColumns) {
		t.Fatalf("len(Row()) = %d, want %d", len(row), len(MarketColumns))
	}

	cells := map[string]string{}
	for i, col := range MarketColumns {
		cells[col] = row[i]
	}

	if cells["ticker"] != "PRES-2024-DEM" {
		t.Errorf("ticker = %q, want %q", cells["ticker"], "PRES-2024-DEM")
	}
	if cells["yes_bid"] != "52" {
		t.Errorf("yes_bid = %q, want %q", cells["yes_bid"], "52")
	}
	if cells["yes_bid_dollars"] != "0.5250" {
		t.Errorf("yes_bid_dollars = %q, want %q", cells["yes_bid_dollars"], "0.5250")
	}
	if cells["volume"] != "1000" {
		t.Errorf("volume = %q, want %q", cells["volume"], "1000")
	}
	if cells["can_close_early"] != "true" {
		t.Errorf("can_close_early = %q, want %q", cells["can_close_early"], "true")
	}
	if cells["floor_strike"] != "3.5" {
		t.Errorf("floor_strike = %q, want %q", cells["floor_strike"], "3.5")
	}
	if cells["cap_strike"] != "" {
		t.Errorf("cap_strike = %q, want empty", cells["cap_strike"])
	}
	if cells["date"] != "2025-08-25" {
		t.Errorf("date = %q, want %q", cells["date"], "2025-08-25")
	}
}

// TestMarketRowZeroValue ensures the zero record still renders a full row.
func TestMarketRowZeroValue(t *testing.T) {
	var m MarketRecord
	row := m.Row()

	if len(row) != len(MarketColumns) {
		t.Fatalf("len(Row()) = %d, want %d", len(row), len(MarketColumns))
	}
	for i, col := range MarketColumns {
		switch col {
		case "floor_strike", "cap_strike":
			if row[i] != "" {
				t.Errorf("%s = %q, want empty for absent strike", col, row[i])
			}
		}
	}
}
