// File: accessors.go
// Title: Typed Accessors
// Description: Typed reads layered on Resolve through converters, plus the
//              defaulting getters and list splitting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of typed getters
// - 2026-10-15 v0.2.0: Section/option addressing and converters

package config

import (
	"regexp"
	"time"

	gzlog "github.com/bmc/grizzled-go/core/log"
	gzstringx "github.com/bmc/grizzled-go/utils/stringx"
)

// GetAs resolves an option and converts it. A missing option yields
// (zero, false, nil); resolution and conversion failures are returned as
// errors, the latter with code CONVERSION.
func GetAs[T any](c *Configuration, section, option string, conv Converter[T]) (T, bool, error) {
	var zero T
	s, ok, err := c.Resolve(section, option)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := conv(section, option, s)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// GetAsOpt is GetAs with failures reported as not found.
func GetAsOpt[T any](c *Configuration, section, option string, conv Converter[T]) (T, bool) {
	v, ok, err := GetAs(c, section, option, conv)
	if err != nil {
		c.policy.logger.Debug("typed read failed", gzlog.Fields{
			"section": section,
			"option":  option,
			"error":   err,
		})
		return v, false
	}
	return v, ok
}

func getOrDefault[T any](c *Configuration, section, option string, conv Converter[T], defaultValue []T) T {
	if v, ok := GetAsOpt(c, section, option, conv); ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	var zero T
	return zero
}

// GetString returns a string configuration value with optional default
func (c *Configuration) GetString(section, option string, defaultValue ...string) string {
	return getOrDefault(c, section, option, StringConverter, defaultValue)
}

// GetInt returns an integer configuration value with optional default
func (c *Configuration) GetInt(section, option string, defaultValue ...int) int {
	return getOrDefault(c, section, option, IntConverter, defaultValue)
}

// GetInt64 returns an int64 configuration value with optional default
func (c *Configuration) GetInt64(section, option string, defaultValue ...int64) int64 {
	return getOrDefault(c, section, option, Int64Converter, defaultValue)
}

// GetBool returns a boolean configuration value with optional default
func (c *Configuration) GetBool(section, option string, defaultValue ...bool) bool {
	return getOrDefault(c, section, option, BoolConverter, defaultValue)
}

// GetFloat returns a float configuration value with optional default
func (c *Configuration) GetFloat(section, option string, defaultValue ...float64) float64 {
	return getOrDefault(c, section, option, Float64Converter, defaultValue)
}

// GetDuration returns a duration configuration value with optional default
func (c *Configuration) GetDuration(section, option string, defaultValue ...time.Duration) time.Duration {
	return getOrDefault(c, section, option, DurationConverter, defaultValue)
}

// GetTime returns a timestamp configuration value with optional default
func (c *Configuration) GetTime(section, option string, defaultValue ...time.Time) time.Time {
	return getOrDefault(c, section, option, TimeConverter, defaultValue)
}

// GetList splits the resolved value of an option on sep, dropping empty
// tokens. A nil sep splits on commas with optional surrounding whitespace.
func (c *Configuration) GetList(section, option string, sep *regexp.Regexp) ([]string, bool) {
	s, ok := c.Get(section, option)
	if !ok {
		return nil, false
	}
	return gzstringx.SplitTokens(s, sep), true
}
