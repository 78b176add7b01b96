// File: fetch.go
// Title: URL Fetching
// Description: Retrieves configuration sources and includes addressed by
//              http, https and file URLs.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	gzerror "github.com/bmc/grizzled-go/core/error"
)

const (
	// DefaultFetchTimeout bounds a single URL fetch.
	DefaultFetchTimeout = 30 * time.Second

	// MaxFetchSize bounds the size of a fetched document.
	MaxFetchSize = 10 << 20
)

// Fetcher retrieves the content addressed by a URL.
type Fetcher interface {
	Fetch(ctx context.Context, u *url.URL) ([]byte, error)
}

// URLFetcher fetches http and https URLs with an HTTP client and reads file
// URLs from the local file system.
type URLFetcher struct {
	Client  *http.Client
	Timeout time.Duration
}

// NewURLFetcher returns a URLFetcher with the default timeout.
func NewURLFetcher() *URLFetcher {
	return &URLFetcher{
		Client:  http.DefaultClient,
		Timeout: DefaultFetchTimeout,
	}
}

// Fetch implements Fetcher.
func (f *URLFetcher) Fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	switch u.Scheme {
	case "file":
		data, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, gzerror.Wrap(err, "failed to read file URL").
				WithCode(gzerror.CodeIOError).
				WithDetail("url", u.String())
		}
		return data, nil
	case "http", "https":
		return f.fetchHTTP(ctx, u)
	default:
		return nil, gzerror.Newf("unsupported URL scheme: %s", u.Scheme).
			WithCode(gzerror.CodeInvalidInput).
			WithDetail("url", u.String())
	}
}

func (f *URLFetcher) fetchHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, gzerror.Wrap(err, "failed to create request").
			WithCode(gzerror.CodeInvalidInput).
			WithDetail("url", u.String())
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, gzerror.Wrap(err, "request failed").
			WithCode(gzerror.CodeNetworkError).
			WithDetail("url", u.String())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, gzerror.New(fmt.Sprintf("unexpected status: %s", resp.Status)).
			WithCode(gzerror.CodeNetworkError).
			WithDetail("url", u.String()).
			WithDetail("status", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxFetchSize+1))
	if err != nil {
		return nil, gzerror.Wrap(err, "failed to read response").
			WithCode(gzerror.CodeNetworkError).
			WithDetail("url", u.String())
	}
	if len(data) > MaxFetchSize {
		return nil, gzerror.New("response too large").
			WithCode(gzerror.CodeInvalidInput).
			WithDetail("url", u.String()).
			WithDetail("limit", MaxFetchSize)
	}
	return data, nil
}

// parseSourceURL reports whether s is an absolute URL this package can
// fetch.
func parseSourceURL(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}
	switch u.Scheme {
	case "http", "https", "file":
		return u, true
	default:
		return nil, false
	}
}
