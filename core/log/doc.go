// Package log provides structured logging for the grizzled libraries.
//
// Package: log
// Title: Structured Logging
// Description: This package wraps go.uber.org/zap behind a small, immutable
//              Logger API with leveled methods, persistent fields and
//              integration with the structured error type. The configuration
//              parser logs include resolution and reload events through it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Backed by zap; dropped timers, audit level and async buffering
//
// Usage:
//
//	import gzlog "github.com/bmc/grizzled-go/core/log"
//
//	logger := gzlog.NewWithConfig(gzlog.Config{
//		Level:  gzlog.LevelDebug,
//		Format: gzlog.FormatConsole,
//		Name:   "config",
//	})
//	logger.Debug("including file", gzlog.Field("target", "common.ini"))
//	logger.LogError(err)
package log
