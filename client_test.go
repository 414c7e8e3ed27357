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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-oxd/cache"
	"github.com/ianlewis/go-oxd/internal/testutil"
	"github.com/ianlewis/go-oxd/model"
)

func newTestClient(t *testing.T, baseURL string, c *cache.Cache) *Client {
	t.Helper()
	return NewClient(&Options{
		BaseURL: baseURL,
		AppID:   testutil.AppID,
		AppKey:  testutil.AppKey,
		Cache:   c,
	})
}

func TestClient_entryURL(t *testing.T) {
	t.Parallel()

	c := NewClient(nil)
	want := "https://od-api.oxforddictionaries.com/api/v2/words/en-us?q=ice+cream"
	if got := c.entryURL("ice cream"); want != got {
		t.Fatalf("entryURL; want: %q, got: %q", want, got)
	}
}

func TestClient_Entry(t *testing.T) {
	t.Parallel()

	want := testutil.RustWord()
	p := testutil.NewProvider(t, map[string]model.RetrieveEntry{"rust": want})

	c, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	client := newTestClient(t, p.URL, c)

	for range 2 {
		got, err := client.Entry(context.Background(), " rust ")
		if err != nil {
			t.Fatalf("Entry: %v", err)
		}
		if diff := cmp.Diff(&want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("Entry (-want, +got):\n%s", diff)
		}
	}

	// The second lookup is served from the cache.
	if want, got := int64(1), p.Requests.Load(); want != got {
		t.Fatalf("requests; want: %d, got: %d", want, got)
	}
}

func TestClient_Entry_caseFolded(t *testing.T) {
	t.Parallel()

	p := testutil.NewProvider(t, map[string]model.RetrieveEntry{"rust": testutil.RustWord()})

	c, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	client := newTestClient(t, p.URL, c)

	for _, word := range []string{"Rust", " RUST ", "rust"} {
		got, err := client.Entry(context.Background(), word)
		if err != nil {
			t.Fatalf("Entry(%q): %v", word, err)
		}
		if want, got := "rust", got.Results[0].Word; want != got {
			t.Fatalf("Entry(%q); want: %q, got: %q", word, want, got)
		}
	}

	// Every spelling shares the one cache entry.
	if want, got := int64(1), p.Requests.Load(); want != got {
		t.Fatalf("requests; want: %d, got: %d", want, got)
	}
}

func TestClient_Entry_errors(t *testing.T) {
	t.Parallel()

	p := testutil.NewProvider(t, map[string]model.RetrieveEntry{"rust": testutil.RustWord()})

	tests := []struct {
		name   string
		client *Client
		word   string
		err    error
	}{
		{
			name:   "not found",
			client: newTestClient(t, p.URL, nil),
			word:   "rsut",
			err:    ErrNotFound,
		},
		{
			name:   "bad credentials",
			client: NewClient(&Options{BaseURL: p.URL, AppID: "wrong"}),
			word:   "rust",
			err:    ErrStatus,
		},
		{
			name:   "empty word",
			client: newTestClient(t, p.URL, nil),
			word:   " \t",
			err:    errEmptyWord,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := test.client.Entry(context.Background(), test.word)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Entry error (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestClient_Entry_invalid(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"lexicalEntries": []}]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, nil).Entry(context.Background(), "rust")
	if !errors.Is(err, model.ErrInvalidEntry) {
		t.Fatalf("Entry: want ErrInvalidEntry, got %v", err)
	}
}

func TestClient_Entry_retry(t *testing.T) {
	t.Parallel()

	body := testutil.MakeEntryJSON(t, testutil.TestWord())

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL, nil).Entry(context.Background(), "test")
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if want, got := "test", got.Results[0].Word; want != got {
		t.Fatalf("Entry; want: %q, got: %q", want, got)
	}
	if want, got := int64(2), calls.Load(); want != got {
		t.Fatalf("calls; want: %d, got: %d", want, got)
	}
}

func TestClient_Entry_retryFails(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, nil).Entry(context.Background(), "test")
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("Entry: want ErrStatus, got %v", err)
	}
	if want, got := int64(2), calls.Load(); want != got {
		t.Fatalf("calls; want: %d, got: %d", want, got)
	}
}

func TestClient_Entries(t *testing.T) {
	t.Parallel()

	p := testutil.NewProvider(t, map[string]model.RetrieveEntry{
		"rust": testutil.RustWord(),
		"test": testutil.TestWord(),
	})
	client := newTestClient(t, p.URL, nil)

	entries, errs := client.Entries(context.Background(), []string{"test", "rust", "test"}, 2)
	if len(errs) > 0 {
		t.Fatalf("Entries: %v", errs)
	}
	var words []string
	for _, e := range entries {
		words = append(words, e.Results[0].Word)
	}
	if diff := cmp.Diff([]string{"test", "rust", "test"}, words); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}

	entries, errs = client.Entries(context.Background(), []string{"rsut", "rust"}, 0)
	if len(errs) != 1 || !errors.Is(errs[0], ErrNotFound) {
		t.Fatalf("Entries: want one ErrNotFound, got %v", errs)
	}
	if entries[0] != nil {
		t.Fatalf("Entries: want nil entry for failed word, got %v", entries[0])
	}
	if want, got := "rust", entries[1].Results[0].Word; want != got {
		t.Fatalf("Entries; want: %q, got: %q", want, got)
	}
}

func TestClient_Audio(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("app_key") != "" {
			t.Errorf("credentials sent to audio host")
		}
		if r.URL.Path != "/rust.mp3" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ID3"))
	}))
	defer srv.Close()

	client := newTestClient(t, "http://unused.invalid/", nil)
	b, err := client.Audio(context.Background(), srv.URL+"/rust.mp3")
	if err != nil {
		t.Fatalf("Audio: %v", err)
	}
	if diff := cmp.Diff("ID3", string(b)); diff != "" {
		t.Fatalf("Audio (-want, +got):\n%s", diff)
	}

	if _, err := client.Audio(context.Background(), srv.URL+"/none.mp3"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Audio: want ErrNotFound, got %v", err)
	}
}
