// File: accessors_test.go
// Title: Typed Accessor Tests
// Description: Tests for converters, GetAs, the defaulting getters and
//              list splitting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Typed getter tests
// - 2026-10-15 v0.2.0: Converters and section/option addressing

package config

import (
	"regexp"
	"strings"
	"testing"
	"time"

	gzerror "github.com/bmc/grizzled-go/core/error"
)

func TestBoolConverter(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"YES", true, false},
		{"On", true, false},
		{"1", true, false},
		{"false", false, false},
		{"no", false, false},
		{"OFF", false, false},
		{" 0 ", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := BoolConverter("s", "o", tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BoolConverter(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("BoolConverter(%q) = %v", tt.in, got)
			}
			if err != nil && !gzerror.HasCode(err, gzerror.CodeConversion) {
				t.Errorf("code = %v", gzerror.GetCode(err))
			}
		})
	}
}

func TestNumericAndRuneConverters(t *testing.T) {
	if n, err := IntConverter("s", "o", " 42 "); err != nil || n != 42 {
		t.Errorf("IntConverter = %d, %v", n, err)
	}
	if _, err := IntConverter("s", "o", "4x"); !gzerror.HasCode(err, gzerror.CodeConversion) {
		t.Errorf("IntConverter(4x) error = %v", err)
	}
	if n, err := Int64Converter("s", "o", "9000000000"); err != nil || n != 9000000000 {
		t.Errorf("Int64Converter = %d, %v", n, err)
	}
	if f, err := Float64Converter("s", "o", "2.5"); err != nil || f != 2.5 {
		t.Errorf("Float64Converter = %v, %v", f, err)
	}
	if d, err := DurationConverter("s", "o", "1m30s"); err != nil || d != 90*time.Second {
		t.Errorf("DurationConverter = %v, %v", d, err)
	}
	if d, err := DurationConverter("s", "o", "2 days"); err != nil || d != 48*time.Hour {
		t.Errorf("DurationConverter(2 days) = %v, %v", d, err)
	}
	if _, err := DurationConverter("s", "o", "-1s"); !gzerror.HasCode(err, gzerror.CodeConversion) {
		t.Errorf("DurationConverter(-1s) error = %v", err)
	}
	if ts, err := TimeConverter("s", "o", "2025-01-25T08:00:00Z"); err != nil || !ts.Equal(time.Date(2025, 1, 25, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("TimeConverter = %v, %v", ts, err)
	}
	if _, err := TimeConverter("s", "o", "yesterday"); !gzerror.HasCode(err, gzerror.CodeConversion) {
		t.Errorf("TimeConverter(yesterday) error = %v", err)
	}
	if r, err := RuneConverter("s", "o", "é"); err != nil || r != 'é' {
		t.Errorf("RuneConverter = %q, %v", r, err)
	}
	for _, bad := range []string{"", "ab"} {
		if _, err := RuneConverter("s", "o", bad); !gzerror.HasCode(err, gzerror.CodeConversion) {
			t.Errorf("RuneConverter(%q) error = %v", bad, err)
		}
	}

	_, err := IntConverter("net", "port", "eighty")
	if v, _ := gzerror.GetDetail(err, "option"); v != "port" {
		t.Errorf("option detail = %v", v)
	}
	if !strings.Contains(err.Error(), "net.port") {
		t.Errorf("error %q should name the option", err.Error())
	}
}

func TestGetAs(t *testing.T) {
	cfg := mustLoad(t, "[net]\nport = 80${suffix}\nsuffix = 80\nname = web\nbad = ${nope}\n", Options{Strict: true})

	port, ok, err := GetAs[int](cfg, "net", "port", IntConverter)
	if err != nil || !ok || port != 8080 {
		t.Errorf("GetAs(port) = %d, %v, %v", port, ok, err)
	}

	_, ok, err = GetAs[int](cfg, "net", "missing", IntConverter)
	if ok || err != nil {
		t.Errorf("GetAs(missing) = %v, %v; want not found without error", ok, err)
	}

	_, ok, err = GetAs[int](cfg, "net", "name", IntConverter)
	if ok || !gzerror.HasCode(err, gzerror.CodeConversion) {
		t.Errorf("GetAs(name) = %v, %v; want CONVERSION", ok, err)
	}

	_, _, err = GetAs[string](cfg, "net", "bad", StringConverter)
	if !gzerror.HasCode(err, gzerror.CodeVariableNotFound) {
		t.Errorf("GetAs(bad) error = %v; want VARIABLE_NOT_FOUND", err)
	}

	if _, ok := GetAsOpt[int](cfg, "net", "name", IntConverter); ok {
		t.Error("GetAsOpt should report conversion failure as absent")
	}
	if v, ok := GetAsOpt[string](cfg, "net", "name", StringConverter); !ok || v != "web" {
		t.Errorf("GetAsOpt(name) = %q, %v", v, ok)
	}
}

func TestDefaultingGetters(t *testing.T) {
	cfg := mustLoad(t, `
[app]
name = demo
workers = 4
big = 12345678901
debug = yes
ratio = 0.75
timeout = 2s
retention = 1 week
started = 2025-01-25 08:00:00
broken = many
`, Options{})

	if got := cfg.GetString("app", "name"); got != "demo" {
		t.Errorf("GetString = %q", got)
	}
	if got := cfg.GetString("app", "missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("app", "workers"); got != 4 {
		t.Errorf("GetInt = %d", got)
	}
	if got := cfg.GetInt("app", "broken", 7); got != 7 {
		t.Errorf("GetInt on bad value should use default, got %d", got)
	}
	if got := cfg.GetInt("app", "missing"); got != 0 {
		t.Errorf("GetInt without default = %d", got)
	}
	if got := cfg.GetInt64("app", "big"); got != 12345678901 {
		t.Errorf("GetInt64 = %d", got)
	}
	if !cfg.GetBool("app", "debug") {
		t.Error("GetBool = false")
	}
	if got := cfg.GetFloat("app", "ratio"); got != 0.75 {
		t.Errorf("GetFloat = %v", got)
	}
	if got := cfg.GetDuration("app", "timeout"); got != 2*time.Second {
		t.Errorf("GetDuration = %v", got)
	}
	if got := cfg.GetDuration("app", "missing", time.Minute); got != time.Minute {
		t.Errorf("GetDuration default = %v", got)
	}
	if got := cfg.GetDuration("app", "retention"); got != 7*24*time.Hour {
		t.Errorf("GetDuration(retention) = %v", got)
	}
	if got := cfg.GetTime("app", "started"); !got.Equal(time.Date(2025, 1, 25, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("GetTime = %v", got)
	}
	if got := cfg.GetTime("app", "broken"); !got.IsZero() {
		t.Errorf("GetTime on bad value = %v, want zero", got)
	}
}

func TestGetList(t *testing.T) {
	cfg := mustLoad(t, `
[cluster]
hosts = a, b ,c,,d
ports = 1 | 2|3
single = only
empty =
`, Options{})

	tests := []struct {
		option string
		sep    *regexp.Regexp
		want   []string
	}{
		{"hosts", nil, []string{"a", "b", "c", "d"}},
		{"ports", regexp.MustCompile(`\s*\|\s*`), []string{"1", "2", "3"}},
		{"single", nil, []string{"only"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			got, ok := cfg.GetList("cluster", tt.option, tt.sep)
			if !ok {
				t.Fatal("GetList() not found")
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("GetList() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, ok := cfg.GetList("cluster", "missing", nil); ok {
		t.Error("GetList(missing) should report absent")
	}
}
