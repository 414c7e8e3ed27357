// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oxd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-oxd/cache"
	"github.com/ianlewis/go-oxd/internal/folding"
	"github.com/ianlewis/go-oxd/model"
)

const (
	// DefaultBaseURL is the Oxford Dictionaries API v2 endpoint.
	DefaultBaseURL = "https://od-api.oxforddictionaries.com/api/v2/"

	// DefaultLanguage is the source language of lookups.
	DefaultLanguage = "en-us"

	// DefaultTimeout is the timeout of a single HTTP request.
	DefaultTimeout = 10 * time.Second

	retryDelay = 500 * time.Millisecond
)

var (
	// ErrNotFound indicates the provider has no entry for the word.
	ErrNotFound = errors.New("not found")

	// ErrStatus indicates the provider returned an unexpected HTTP status.
	ErrStatus = errors.New("unexpected status")

	errEmptyWord = errors.New("empty word")
)

// Options are options for a Client.
type Options struct {
	// BaseURL is the API base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// Language is the source language. Defaults to DefaultLanguage.
	Language string

	// AppID and AppKey are the API credentials.
	AppID  string
	AppKey string

	// Timeout is the HTTP request timeout. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Cache caches raw responses. Optional.
	Cache *cache.Cache

	// Logger receives debug and warning logs. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Client retrieves entries from the dictionary provider.
type Client struct {
	baseURL    string
	language   string
	appID      string
	appKey     string
	httpClient *http.Client
	cache      *cache.Cache
	log        *slog.Logger
}

// NewClient returns a new Client.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}

	c := &Client{
		baseURL:    opts.BaseURL,
		language:   opts.Language,
		appID:      opts.AppID,
		appKey:     opts.AppKey,
		httpClient: &http.Client{Timeout: opts.Timeout},
		cache:      opts.Cache,
		log:        opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}
	if c.httpClient.Timeout == 0 {
		c.httpClient.Timeout = DefaultTimeout
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.log = c.log.With("component", "client")

	return c
}

func (c *Client) entryURL(word string) string {
	q := url.Values{}
	q.Set("q", word)
	return c.baseURL + "words/" + url.PathEscape(c.language) + "?" + q.Encode()
}

// Entry retrieves the entry for word. The word is whitespace folded and lower
// cased before it is sent, so it matches its cache key. It returns an error
// wrapping ErrNotFound if the provider has no entry.
func (c *Client) Entry(ctx context.Context, word string) (*model.RetrieveEntry, error) {
	word = folding.Key(word)
	if word == "" {
		return nil, errEmptyWord
	}

	if c.cache != nil {
		b, err := c.cache.Get(word)
		switch {
		case err == nil:
			e, err := model.Decode(bytes.NewReader(b))
			if err == nil {
				c.log.DebugContext(ctx, "cache hit", slog.String("word", word))
				return e, nil
			}
			c.log.WarnContext(ctx, "ignoring bad cache entry", slog.String("word", word), slog.String("error", err.Error()))
		case !errors.Is(err, cache.ErrMiss):
			c.log.WarnContext(ctx, "reading cache", slog.String("word", word), slog.String("error", err.Error()))
		}
	}

	b, err := c.get(ctx, c.entryURL(word), true)
	if err != nil {
		return nil, fmt.Errorf("retrieving %q: %w", word, err)
	}

	e, err := model.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("retrieving %q: %w", word, err)
	}

	if c.cache != nil {
		if err := c.cache.Put(word, b); err != nil {
			c.log.WarnContext(ctx, "writing cache", slog.String("word", word), slog.String("error", err.Error()))
		}
	}

	c.log.DebugContext(ctx, "retrieved entry",
		slog.String("word", word),
		slog.Int("headwords", len(e.Results)),
	)

	return e, nil
}

// Entries retrieves the entries for several words with at most limit
// requests in flight. A limit of zero or less means no limit. The returned
// slice is in the order of words and holds nil for each word that could not
// be retrieved. The returned errors hold only those failures, in word order,
// so their indexes do not line up with words.
func (c *Client) Entries(ctx context.Context, words []string, limit int) ([]*model.RetrieveEntry, []error) {
	entries := make([]*model.RetrieveEntry, len(words))
	wordErrs := make([]error, len(words))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, w := range words {
		g.Go(func() error {
			entries[i], wordErrs[i] = c.Entry(ctx, w)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, err := range wordErrs {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return entries, errs
}

// Audio downloads the audio file at rawURL.
func (c *Client) Audio(ctx context.Context, rawURL string) ([]byte, error) {
	b, err := c.get(ctx, rawURL, false)
	if err != nil {
		return nil, fmt.Errorf("downloading %q: %w", rawURL, err)
	}
	return b, nil
}

// get performs a GET request and returns the body of a 200 response. The
// request is retried once on a network error or 5xx status.
func (c *Client) get(ctx context.Context, rawURL string, auth bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if auth {
		req.Header.Set("app_id", c.appID)
		req.Header.Set("app_key", c.appKey)
	}
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "request", slog.String("url", rawURL))

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return b, nil
}

func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err == nil && resp.StatusCode < http.StatusInternalServerError {
		return resp, nil
	}
	if ctx.Err() != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, ctx.Err()
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "retrying request", slog.String("url", req.URL.String()), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	return resp, nil
}
