/* fetch.go
 * Contains the rate-limited HTTP fetcher used when the source datasets live behind a
 * URL instead of on disk. The dataset host asks clients to identify themselves and to
 * space out requests, so all fetches go through one shared limiter
 * Authors: Zachary Bower
 */

package external

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"nba-scorigami/api/archive"

	"golang.org/x/time/rate"
)

// Fetcher downloads dataset files over HTTP, one request every two seconds at most
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher. A nil client falls back to http.DefaultClient
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Fetch downloads url and returns its decompressed body.
// Preconditions: Receives a context used for both the limiter wait and the request
// Postconditions: Returns the response body, or an error for any non-200 response.
// There is no retry; a failed fetch is terminal for that dataset
func (f *Fetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("User-Agent", "ScorigamiDataFetcher/1.0")
	request.Header.Set("Accept-Encoding", "gzip")

	response, err := f.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		response.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: status code %d", url, response.StatusCode)
	}

	if response.Header.Get("Content-Encoding") == "gzip" {
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			response.Body.Close()
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return &gzipBody{reader: reader, body: response.Body}, nil
	}

	return response.Body, nil
}

// FetchArchive downloads and parses a remote scorigami archive document
func (f *Fetcher) FetchArchive(ctx context.Context, url string) (*archive.Archive, error) {
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ParseArchive(body)
}

// FetchSchedule downloads and parses a remote schedule CSV
func (f *Fetcher) FetchSchedule(ctx context.Context, url string) ([]ScheduledGame, error) {
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ParseSchedule(body)
}

// FetchResults downloads and parses a remote played-results CSV
func (f *Fetcher) FetchResults(ctx context.Context, url string) ([]PlayedGame, error) {
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ParseResults(body)
}

// gzipBody closes both the gzip reader and the underlying response body
type gzipBody struct {
	reader *gzip.Reader
	body   io.ReadCloser
}

func (g *gzipBody) Read(p []byte) (int, error) {
	return g.reader.Read(p)
}

func (g *gzipBody) Close() error {
	err := g.reader.Close()
	if cerr := g.body.Close(); err == nil {
		err = cerr
	}
	return err
}
