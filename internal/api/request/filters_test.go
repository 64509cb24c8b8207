package request

import (
	"testing"
	"time"
)

func TestParseHistoryFilters(t *testing.T) {
	now := time.Date(2025, 6, 30, 14, 0, 0, 0, time.UTC)

	t.Run("defaults to the last year", func(t *testing.T) {
		filters, err := ParseHistoryFilters("", "", "", now)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if !filters.EndDate.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected end date 2025-06-30, got %s", filters.EndDate)
		}
		if !filters.StartDate.Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected start date 2024-06-30, got %s", filters.StartDate)
		}
		if filters.Fund != "" {
			t.Errorf("Expected empty fund, got '%s'", filters.Fund)
		}
	})

	t.Run("explicit range and fund", func(t *testing.T) {
		filters, err := ParseHistoryFilters(" Yang Fund 1 ", "2024-01-01", "2024-03-31T10:00:00Z", now)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if filters.Fund != "Yang Fund 1" {
			t.Errorf("Expected fund 'Yang Fund 1', got '%s'", filters.Fund)
		}
		if !filters.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected start date 2024-01-01, got %s", filters.StartDate)
		}
		if !filters.EndDate.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected end date 2024-03-31, got %s", filters.EndDate)
		}
	})

	t.Run("invalid start date", func(t *testing.T) {
		_, err := ParseHistoryFilters("", "01/02/2024", "", now)
		if err == nil {
			t.Error("Expected error for invalid start date")
		}
	})

	t.Run("invalid end date", func(t *testing.T) {
		_, err := ParseHistoryFilters("", "", "yesterday", now)
		if err == nil {
			t.Error("Expected error for invalid end date")
		}
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := ParseHistoryFilters("", "2024-05-01", "2024-04-01", now)
		if err == nil {
			t.Error("Expected error for inverted range")
		}
	})
}

func TestParseRecentLimit(t *testing.T) {
	tests := []struct {
		param   string
		want    int
		wantErr bool
	}{
		{param: "", want: 5},
		{param: "1", want: 1},
		{param: "50", want: 50},
		{param: "0", wantErr: true},
		{param: "51", wantErr: true},
		{param: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("limit="+tt.param, func(t *testing.T) {
			got, err := ParseRecentLimit(tt.param)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.param)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseCompanyStatus(t *testing.T) {
	if s, err := ParseCompanyStatus("active"); err != nil || s != "Active" {
		t.Errorf("Expected 'Active', got '%s' (%v)", s, err)
	}
	if s, err := ParseCompanyStatus(""); err != nil || s != "" {
		t.Errorf("Expected empty status, got '%s' (%v)", s, err)
	}
	if _, err := ParseCompanyStatus("Dormant"); err == nil {
		t.Error("Expected error for unknown status")
	}
}

func TestParseDate(t *testing.T) {
	fallback := time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)

	got, err := ParseDate("", fallback)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !got.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected fallback day, got %s", got)
	}

	got, err = ParseDate("2024-02-29", fallback)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 2024-02-29, got %s", got)
	}

	if _, err := ParseDate("2024-02-30", fallback); err == nil {
		t.Error("Expected error for impossible date")
	}
}
