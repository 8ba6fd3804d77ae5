package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alansaviolobo/atlaskit/pkg/cache"
	"github.com/alansaviolobo/atlaskit/pkg/errors"
	"github.com/alansaviolobo/atlaskit/pkg/httputil"
)

// DefaultTTL is how long a fetched catalog document stays fresh.
const DefaultTTL = time.Hour

// Fetcher retrieves the catalog document from a URL, caching the raw
// bytes so repeated invocations and offline runs stay cheap.
type Fetcher struct {
	URL    string
	Client *http.Client
	Cache  cache.Cache
	TTL    time.Duration
	Logger *log.Logger
}

// NewFetcher creates a Fetcher with the given URL and cache.
// A nil cache disables caching; a nil logger falls back to log.Default().
func NewFetcher(url string, c cache.Cache, logger *log.Logger) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Fetcher{
		URL:    url,
		Cache:  c,
		TTL:    DefaultTTL,
		Logger: logger,
	}
}

// Fetch returns the catalog document, from cache when fresh, otherwise
// fetched with retry.
func (f *Fetcher) Fetch(ctx context.Context) (*Document, error) {
	key := cache.Key("catalog", f.URL)

	if data, yes, err := f.Cache.Get(ctx, key); err == nil && yes {
		if doc, err := parseJSON(data); err == nil {
			return doc, nil
		}
		// Corrupt entry; drop it and refetch.
		_ = f.Cache.Delete(ctx, key)
	}

	var body json.RawMessage
	if err := httputil.GetJSON(ctx, f.Client, f.URL, &body); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to fetch catalog from %s", f.URL)
	}

	doc, err := parseJSON(body)
	if err != nil {
		return nil, err
	}

	if err := f.Cache.Set(ctx, key, body, f.TTL); err != nil {
		f.Logger.Warn("failed to cache catalog", "error", err)
	}

	return doc, nil
}

// FetchOrDefault returns the fetched catalog, or the built-in default
// table when fetching fails. The failure is logged, not propagated:
// a viewer with default layers beats a blank one.
func (f *Fetcher) FetchOrDefault(ctx context.Context) *Document {
	doc, err := f.Fetch(ctx)
	if err != nil {
		f.Logger.Warn("falling back to built-in default catalog", "error", err)
		return Default()
	}
	return doc
}

func parseJSON(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "catalog document is not valid JSON")
	}
	return fromRaw(raw), nil
}
