package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// fetcher reads request documents from URLs, local files or stdin.
type fetcher struct {
	httpClient *http.Client
	stdin      io.Reader
}

func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		stdin:      os.Stdin,
	}
}

// fetch returns the document at urlOrPath. An empty path or "-" reads stdin.
func (f *fetcher) fetch(urlOrPath string) ([]byte, error) {
	if urlOrPath == "" || urlOrPath == "-" {
		return io.ReadAll(f.stdin)
	}

	if !isURL(urlOrPath) {
		return os.ReadFile(urlOrPath)
	}

	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
