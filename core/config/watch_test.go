// File: watch_test.go
// Title: Configuration Watcher Tests
// Description: Tests for reloading a watched configuration file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial watcher tests
// - 2026-10-15 v0.2.0: fsnotify-based reload and failed reload handling

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gzerror "github.com/bmc/grizzled-go/core/error"
	gzlog "github.com/bmc/grizzled-go/core/log"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.ini")
	writeFiles(t, dir, map[string]string{"app.ini": "[app]\nversion = 1\n"})

	w, err := NewWatcher(path, Options{Logger: gzlog.NewNop()})
	if err != nil {
		t.Fatal(err)
	}
	w.WithDebounce(20 * time.Millisecond)
	defer w.Close()

	changed := make(chan string, 4)
	w.OnChange(func(oldConfig, newConfig *Configuration) {
		v, _ := newConfig.Get("app", "version")
		select {
		case changed <- v:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("[app]\nversion = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// A write may be observed as truncate plus write, so wait for the
	// final contents.
	deadline := time.After(5 * time.Second)
	for seen := ""; seen != "2"; {
		select {
		case seen = <-changed:
		case <-deadline:
			t.Fatalf("no reload to version 2 within 5s, last seen %q", seen)
		}
	}

	if v, _ := w.Current().Get("app", "version"); v != "2" {
		t.Errorf("Current() version = %q", v)
	}
}

func TestWatcherKeepsConfigurationOnFailedReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.ini")
	writeFiles(t, dir, map[string]string{"app.ini": "[app]\nversion = 1\n"})

	w, err := NewWatcher(path, Options{Logger: gzlog.NewNop()})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	calls := 0
	w.OnChange(func(_, _ *Configuration) { calls++ })

	before := w.Current()
	writeFiles(t, dir, map[string]string{"app.ini": "not an ini file\n"})
	if err := w.Reload(); !gzerror.HasCode(err, gzerror.CodeConfigParse) {
		t.Fatalf("Reload() error = %v, want CONFIG_PARSE", err)
	}
	if w.Current() != before {
		t.Error("failed reload replaced the configuration")
	}
	if calls != 0 {
		t.Errorf("handlers called %d times after failed reload", calls)
	}

	writeFiles(t, dir, map[string]string{"app.ini": "[app]\nversion = 3\n"})
	if err := w.Reload(); err != nil {
		t.Fatal(err)
	}
	if v, _ := w.Current().Get("app", "version"); v != "3" || calls != 1 {
		t.Errorf("after reload version = %q, calls = %d", v, calls)
	}
}

func TestNewWatcherMissingFile(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "absent.ini"), Options{})
	if !gzerror.HasCode(err, gzerror.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestWatcherCloseWithoutStart(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"app.ini": "[a]\n"})

	w, err := NewWatcher(filepath.Join(dir, "app.ini"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
