// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"
)

// FormatValue formats an inflation reading at the dashboard's fixed
// 4-decimal precision.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// FormatSigned formats an inflation reading with an explicit sign,
// e.g. "+0.5312", "-0.0200".
func FormatSigned(v float64) string {
	return fmt.Sprintf("%+.4f", v)
}

// FormatMonth renders a date as year-month, e.g. "2024-07".
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}

// FormatDate renders a full calendar date, e.g. "2024-07-01".
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonthName renders a human month, e.g. "Jul 2024".
func FormatMonthName(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatCount adds comma separators to an observation count.
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	rem := len(s) % 3
	if rem > 0 {
		out = append(out, s[:rem]...)
	}
	for i := rem; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
