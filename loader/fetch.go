package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sony/gobreaker"
)

// FetchConfig tunes the HTTP fetcher.
type FetchConfig struct {
	// Client is the HTTP client to use. Defaults to one with a 30s timeout.
	Client *http.Client

	// CacheSize is the number of fetched binaries kept in the LRU byte
	// cache. 0 disables caching.
	CacheSize int

	// MaxBytes caps the size of a fetched binary. 0 means 64 MiB.
	MaxBytes int64
}

const defaultMaxFetchBytes = 64 << 20

// HTTPFetcher fetches module binaries over HTTP with an LRU byte cache in
// front and a circuit breaker around the origin. Repeated loads of the same
// URL hit the cache; a misbehaving origin trips the breaker instead of
// stalling every load behind it.
type HTTPFetcher struct {
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	cache    *lru.Cache[string, []byte]
	maxBytes int64
}

// NewHTTPFetcher creates a fetcher. cfg may be nil for defaults.
func NewHTTPFetcher(cfg *FetchConfig) *HTTPFetcher {
	f := &HTTPFetcher{
		client:   &http.Client{Timeout: 30 * time.Second},
		maxBytes: defaultMaxFetchBytes,
	}
	cacheSize := 16
	if cfg != nil {
		if cfg.Client != nil {
			f.client = cfg.Client
		}
		if cfg.MaxBytes > 0 {
			f.maxBytes = cfg.MaxBytes
		}
		cacheSize = cfg.CacheSize
	}
	if cacheSize > 0 {
		f.cache, _ = lru.New[string, []byte](cacheSize)
	}
	f.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "wasm-fetch",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return f
}

// Fetch retrieves the binary at url, serving from cache when possible.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(url); ok {
			fetchCacheHits.Inc()
			return data, nil
		}
	}

	result, err := f.breaker.Execute(func() (any, error) {
		return f.fetchOrigin(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	data := result.([]byte)

	if f.cache != nil {
		f.cache.Add(url, data)
	}
	return data, nil
}

func (f *HTTPFetcher) fetchOrigin(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("fetch %s: binary exceeds %d bytes", url, f.maxBytes)
	}
	return data, nil
}
