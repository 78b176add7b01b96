// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              chain-aware inspection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-15 v0.2.0: Configuration codes and chain lookups

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if fn := err.StackTrace()[0].Function; !strings.HasSuffix(fn, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", fn)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("variable not found: %s", "nope")
	if err.Error() != "variable not found: nope" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("permission denied"),
			message: "cannot read include",
			wantMsg: "cannot read include: permission denied",
		},
		{
			name:    "wrap structured error",
			err:     New("inner").WithCode(CodeIncludeCycle),
			message: "outer",
			wantMsg: "outer: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrapPreservesCodeAndDetails(t *testing.T) {
	inner := New("cycle").WithCode(CodeIncludeCycle).WithDetail("origin", "a.ini")
	outer := Wrap(inner, "loading")

	if outer.Code() != CodeIncludeCycle {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeIncludeCycle)
	}
	if outer.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityHigh)
	}
	if v, ok := outer.Detail("origin"); !ok || v != "a.ini" {
		t.Errorf("Detail(origin) = %v, %v", v, ok)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeConfigParse, SeverityLow},
		{CodeVariableNotFound, SeverityLow},
		{CodeIncludeFailed, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeCircularReference, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeConfigParse)
	if explicit.Severity() != SeverityCritical {
		t.Error("explicit severity must not be overridden by WithCode")
	}
}

func TestHasCode(t *testing.T) {
	base := New("not found").WithCode(CodeVariableNotFound)
	wrapped := Wrap(base, "resolving a.y").WithCode(CodeConfigParse)
	foreign := fmt.Errorf("outer: %w", wrapped)

	if !HasCode(base, CodeVariableNotFound) {
		t.Error("HasCode(base) should be true")
	}
	if !HasCode(wrapped, CodeVariableNotFound) {
		t.Error("HasCode should look through the chain")
	}
	if !HasCode(foreign, CodeConfigParse) {
		t.Error("HasCode should look through non-structured wrappers")
	}
	if HasCode(errors.New("plain"), CodeVariableNotFound) {
		t.Error("HasCode(plain error) should be false")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("bad").WithCode(CodeConversion))
	if GetCode(err) != CodeConversion {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v", GetSeverity(err))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode(plain) should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity(plain) should be SeverityMedium")
	}
}

func TestGetDetail(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("bad").WithDetail("line", 7))
	if v, ok := GetDetail(err, "line"); !ok || v != 7 {
		t.Errorf("GetDetail(line) = %v, %v", v, ok)
	}
	if _, ok := GetDetail(errors.New("plain"), "line"); ok {
		t.Error("GetDetail(plain) should report false")
	}
}

func TestDetailsIsCopy(t *testing.T) {
	err := New("x").WithDetail("a", 1)
	d := err.Details()
	d["a"] = 2
	if v, _ := err.Detail("a"); v != 1 {
		t.Error("Details() must return a copy")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("eof"), "reading").
		WithCode(CodeIOError).
		WithOperation("config.Load").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: reading",
		"Code: IO_ERROR",
		"Severity: high",
		"Operation: config.Load",
		"Details: {a=1, b=2}",
		"Cause: eof",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeIncludeCycle, "parse"},
		{CodeVariableNotFound, "resolution"},
		{CodeConversion, "conversion"},
		{CodeNetworkError, "io"},
		{CodeNotFound, "generic"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if Code("BOGUS").IsValid() {
		t.Error("unknown code should not be valid")
	}
	if !CodeReservedSection.IsValid() {
		t.Error("CodeReservedSection should be valid")
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityHigh.String() != "high" || Severity(42).String() != "unknown" {
		t.Error("unexpected severity strings")
	}
	if !SeverityHigh.ShouldAlert() || SeverityLow.ShouldAlert() {
		t.Error("unexpected ShouldAlert results")
	}
}
