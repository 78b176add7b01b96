// Package timex parses time values written by people: timestamps in the
// usual ISO, business and RFC layouts, and durations either in Go syntax
// or as a number with a calendar unit.
//
//	t, err := timex.Parse("2025-01-25 08:00:00")
//	d, err := timex.ParseDuration("2 days")
//
// Months count as 30 days and years as 365 days.
package timex
