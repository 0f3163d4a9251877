package source

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/designlint/pkg/cache"
	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/errors"
	"github.com/matzehuels/designlint/pkg/httputil"
	"github.com/matzehuels/designlint/pkg/observability"
)

// MaxDocumentSize caps the size of a fetched export.
const MaxDocumentSize = 64 << 20

// HTTP fetches document exports over HTTP. It handles caching, retry
// logic, and common request headers.
type HTTP struct {
	http    *http.Client
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	headers map[string]string
	retry   httputil.Policy
}

// NewHTTP creates an HTTP source. Headers are applied to every request;
// pass nil if none are needed. A nil cache disables caching.
func NewHTTP(c cache.Cache, keyer cache.Keyer, ttl time.Duration, headers map[string]string) *HTTP {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	return &HTTP{
		http:    httputil.NewClient(),
		cache:   c,
		keyer:   keyer,
		ttl:     ttl,
		headers: headers,
		retry:   httputil.DefaultPolicy,
	}
}

// Load fetches and parses the export at rawURL. Unless refresh is set, a
// cached copy is used when present. Only exports that parse are cached.
func (h *HTTP) Load(ctx context.Context, rawURL string, refresh bool) (*document.Document, error) {
	if err := errors.ValidateURL(rawURL); err != nil {
		return nil, err
	}
	key := h.keyer.DocumentKey(rawURL)
	safe := Redact(rawURL)

	if !refresh {
		data, hit, err := h.cache.Get(ctx, key)
		if err == nil && hit {
			if doc, err := document.ParseBytes(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "document")
				return withName(doc, safe), nil
			}
			_ = h.cache.Delete(ctx, key)
		}
		observability.Cache().OnCacheMiss(ctx, "document")
	}

	var data []byte
	err := httputil.Retry(ctx, h.retry, func() error {
		var err error
		data, err = h.fetch(ctx, rawURL)
		return err
	})
	if err != nil {
		return nil, err
	}

	doc, err := document.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", safe, err)
	}
	if err := h.cache.Set(ctx, key, data, h.ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, "document", len(data))
	}
	return withName(doc, safe), nil
}

func (h *HTTP) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range h.headers {
		req.Header.Set(k, v)
	}

	u := req.URL
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, u.Host, u.Path)
	start := time.Now()

	resp, err := h.http.Do(req)
	if err != nil {
		// *url.Error repeats the full request URL.
		var ue *url.Error
		if stderrors.As(err, &ue) {
			err = ue.Err
		}
		hooks.OnError(ctx, req.Method, u.Host, u.Path, err)
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", redact(u))}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	if err := httputil.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", redact(u), err)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
	if err != nil {
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "read %s", redact(u))}
	}
	if len(data) > MaxDocumentSize {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s exceeds %d bytes", redact(u), MaxDocumentSize)
	}
	return data, nil
}

// Redact returns target with credentials and the query string removed
// when it is a URL. Other targets are returned unchanged.
func Redact(target string) string {
	if !errors.IsURL(target) {
		return target
	}
	u, err := url.Parse(target)
	if err != nil {
		return "<invalid url>"
	}
	return redact(u)
}

// redact drops the query string, which often carries access tokens.
func redact(u *url.URL) string {
	c := *u
	c.RawQuery = ""
	c.User = nil
	return c.String()
}

func withName(doc *document.Document, fallback string) *document.Document {
	if doc.Name == "" {
		doc.Name = fallback
	}
	return doc
}
