package utils

import (
	"testing"
	"time"
)

func TestValidateTimeFormat(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9am", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidateTimeFormat(tt.in); got != tt.want {
			t.Errorf("ValidateTimeFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	got, err := ParseTimeToMinutes("09:30")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got != 570 {
		t.Errorf("minutes = %d, want 570", got)
	}

	if _, err := ParseTimeToMinutes("oops"); err == nil {
		t.Error("expected error for invalid time")
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{61 * time.Second, "01:01"},
		{0, "00:00"},
		{-5 * time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(tt.in); got != tt.want {
			t.Errorf("FormatCountdown(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDaysAgo(t *testing.T) {
	from := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := DaysAgo(from, 1); got != "2026-02-28" {
		t.Errorf("DaysAgo = %q, want 2026-02-28", got)
	}
	if got := DaysAgo(from, 0); got != "2026-03-01" {
		t.Errorf("DaysAgo(0) = %q", got)
	}
}
