package cli

import (
	"testing"
	"time"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5312, "0.5312"},
		{-0.02, "-0.0200"},
		{0, "0.0000"},
		{1.23456789, "1.2346"},
	}
	for _, tc := range tests {
		if got := FormatValue(tc.in); got != tc.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(0.5); got != "+0.5000" {
		t.Errorf("FormatSigned(0.5) = %q, want +0.5000", got)
	}
	if got := FormatSigned(-0.5); got != "-0.5000" {
		t.Errorf("FormatSigned(-0.5) = %q, want -0.5000", got)
	}
}

func TestFormatMonth(t *testing.T) {
	d := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatMonth(d); got != "2024-07" {
		t.Errorf("FormatMonth = %q, want 2024-07", got)
	}
	if got := FormatMonthName(d); got != "Jul 2024" {
		t.Errorf("FormatMonthName = %q, want Jul 2024", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tc := range tests {
		if got := FormatCount(tc.in); got != tc.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
