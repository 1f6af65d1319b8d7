package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "canonical", input: "2024-05-01", expected: "2024-05-01"},
		{name: "unpadded", input: "2024-5-1", expected: "2024-05-01"},
		{name: "surrounding spaces", input: "  2024-12-31 ", expected: "2024-12-31"},
		{name: "rfc3339 timestamp", input: "2024-05-01T13:45:00Z", expected: "2024-05-01"},
		{name: "empty", input: "", wantErr: true},
		{name: "day first", input: "01/05/2024", wantErr: true},
		{name: "impossible day", input: "2024-02-30", wantErr: true},
		{name: "month only", input: "2024-05", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "2024-05", expected: "2024-05"},
		{input: "2024-5", expected: "2024-05"},
		{input: "2024-13", wantErr: true},
		{input: "2024-05-01", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrInvalidMonth) {
					t.Fatalf("expected ErrInvalidMonth, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestInMonth(t *testing.T) {
	if !InMonth("2024-05-01", "2024-05") {
		t.Error("expected 2024-05-01 to be in 2024-05")
	}
	if InMonth("2024-050", "2024-05") {
		t.Error("expected malformed date not to match")
	}
	if InMonth("2024-06-01", "2024-05") {
		t.Error("expected 2024-06-01 not to be in 2024-05")
	}
	if InMonth("2024-05-01", "") {
		t.Error("expected empty month never to match")
	}
	if MonthOf("2024-05-01") != "2024-05" {
		t.Errorf("expected MonthOf to return 2024-05, got %s", MonthOf("2024-05-01"))
	}
}

func TestTodayAndCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.March, 7, 22, 0, 0, 0, time.UTC)
	if Today(now) != "2024-03-07" {
		t.Errorf("unexpected today %s", Today(now))
	}
	if CurrentMonth(now) != "2024-03" {
		t.Errorf("unexpected month %s", CurrentMonth(now))
	}
}
