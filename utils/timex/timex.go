// File: timex.go
// Title: Time Value Parsing
// Description: Parses timestamps in common layouts and durations written
//              either in Go syntax or with calendar units such as "2 days".
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic,
//                       enhanced European date parsing support (DD.MM.YYYY format),
//                       improved negative duration validation
// - 2026-10-15 v0.2.0: Reduced to the parsing used for configuration values

package timex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted by Parse
const (
	ISO8601DateTime  = "2006-01-02T15:04:05"
	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"
	ShortDate        = "01/02/2006"
	ShortDateTime    = "01/02/2006 15:04"
	CompactDate      = "20060102"
	CompactDateTime  = "20060102150405"
	LogTimestamp     = "2006-01-02 15:04:05.000"
)

// layouts are tried in order; the first match wins.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	ISO8601DateTime,
	LogTimestamp,
	BusinessDateTime,
	BusinessDate,
	ShortDateTime,
	ShortDate,
	CompactDateTime,
	CompactDate,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

// calendarUnits maps unit names, singular and abbreviated, to durations.
// Months and years are fixed at 30 and 365 days.
var calendarUnits = map[string]time.Duration{
	"second": time.Second,
	"sec":    time.Second,
	"minute": time.Minute,
	"min":    time.Minute,
	"hour":   time.Hour,
	"hr":     time.Hour,
	"day":    24 * time.Hour,
	"d":      24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"w":      7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
	"y":      365 * 24 * time.Hour,
}

var calendarPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([a-z]+)$`)

// Parse parses a timestamp using the first matching layout. Values without
// a zone are UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time string: %s", value)
}

// ParseDuration parses a Go duration ("1h30m") or a number followed by a
// calendar unit ("2 days", "1.5 hours", "3w"). Negative durations are
// rejected.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration string")
	}
	if strings.HasPrefix(value, "-") {
		return 0, fmt.Errorf("negative durations are not supported: %s", value)
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	m := calendarPattern.FindStringSubmatch(strings.ToLower(value))
	if m == nil {
		return 0, fmt.Errorf("unable to parse duration string: %s", value)
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse duration string: %s", value)
	}

	unit := m[2]
	d, ok := calendarUnits[unit]
	if !ok && len(unit) > 1 && strings.HasSuffix(unit, "s") {
		d, ok = calendarUnits[strings.TrimSuffix(unit, "s")]
	}
	if !ok {
		return 0, fmt.Errorf("unknown duration unit %q in %s", unit, value)
	}
	return time.Duration(num * float64(d)), nil
}
