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

package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ianlewis/go-oxd/model"
)

// Test credentials accepted by the fake provider.
const (
	AppID  = "test-app-id"
	AppKey = "test-app-key"
)

// Provider is a fake dictionary provider.
type Provider struct {
	*httptest.Server

	// Requests is the number of requests served.
	Requests atomic.Int64
}

// NewProvider starts a fake provider serving the given entries keyed by
// query word. Unknown words return 404. Requests with the wrong credentials
// return 403. The server is closed when the test ends.
func NewProvider(t *testing.T, entries map[string]model.RetrieveEntry) *Provider {
	t.Helper()

	bodies := make(map[string][]byte, len(entries))
	for w, e := range entries {
		bodies[w] = MakeEntryJSON(t, e)
	}

	p := &Provider{}
	p.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.Requests.Add(1)
		if r.Header.Get("app_id") != AppID || r.Header.Get("app_key") != AppKey {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		b, ok := bodies[r.URL.Query().Get("q")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	}))
	t.Cleanup(p.Close)

	return p
}
