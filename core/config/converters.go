// File: converters.go
// Title: Value Converters
// Description: Converters turn resolved option values into typed values at
//              read time.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	gzerror "github.com/bmc/grizzled-go/core/error"
	"github.com/bmc/grizzled-go/utils/timex"
)

// Converter converts the resolved value of section.option to a T.
type Converter[T any] func(section, option, value string) (T, error)

func conversionError(section, option, value, target string, cause error) error {
	msg := "cannot convert " + section + "." + option + " to " + target
	var err *gzerror.Error
	if cause != nil {
		err = gzerror.Wrap(cause, msg)
	} else {
		err = gzerror.New(msg + ": " + strconv.Quote(value))
	}
	return err.WithCode(gzerror.CodeConversion).
		WithDetail("section", section).
		WithDetail("option", option).
		WithDetail("value", value)
}

// StringConverter returns the value unchanged.
func StringConverter(_, _, value string) (string, error) {
	return value, nil
}

// BoolConverter accepts true/yes/on/1 and false/no/off/0 in any case.
func BoolConverter(section, option, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, conversionError(section, option, value, "bool", nil)
	}
}

// IntConverter parses a decimal int.
func IntConverter(section, option, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, conversionError(section, option, value, "int", err)
	}
	return n, nil
}

// Int64Converter parses a decimal int64.
func Int64Converter(section, option, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, conversionError(section, option, value, "int64", err)
	}
	return n, nil
}

// Float64Converter parses a float64.
func Float64Converter(section, option, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, conversionError(section, option, value, "float64", err)
	}
	return f, nil
}

// RuneConverter requires the value to be exactly one character.
func RuneConverter(section, option, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, conversionError(section, option, value, "rune", nil)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// DurationConverter parses Go durations ("1h30m") and calendar durations
// ("2 days", "1 week"). Negative durations are rejected.
func DurationConverter(section, option, value string) (time.Duration, error) {
	d, err := timex.ParseDuration(value)
	if err != nil {
		return 0, conversionError(section, option, value, "duration", err)
	}
	return d, nil
}

// TimeConverter parses RFC 3339 and other common timestamp layouts.
func TimeConverter(section, option, value string) (time.Time, error) {
	t, err := timex.Parse(value)
	if err != nil {
		return time.Time{}, conversionError(section, option, value, "time", err)
	}
	return t, nil
}
