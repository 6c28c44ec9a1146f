// Package format renders game numbers for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Points renders a counter value with thousands separators, e.g. 1,234,567.
func Points(n int64) string {
	return printer.Sprintf("%d", n)
}

// Signed renders a delta with an explicit sign, e.g. +10 or -200.
func Signed(n int64) string {
	if n > 0 {
		return "+" + Points(n)
	}
	return Points(n)
}

// Compact shortens large values for narrow layouts: 999, 12.3K, 4.5M.
func Compact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000_000:
		return printer.Sprintf("%.1fB", float64(n)/1e9)
	case abs >= 1_000_000:
		return printer.Sprintf("%.1fM", float64(n)/1e6)
	case abs >= 10_000:
		return printer.Sprintf("%.1fK", float64(n)/1e3)
	default:
		return Points(n)
	}
}
