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

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	oxd "github.com/ianlewis/go-oxd"
	"github.com/ianlewis/go-oxd/internal/testutil"
	"github.com/ianlewis/go-oxd/model"
)

// setupEnv points the app at a fake provider with an isolated configuration.
func setupEnv(t *testing.T) *testutil.Provider {
	t.Helper()

	p := testutil.NewProvider(t, map[string]model.RetrieveEntry{
		"rust": testutil.RustWord(),
		"test": testutil.TestWord(),
	})

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("OXD_CONFIG", "")
	t.Setenv("OXD_CACHE_DIR", dir)
	t.Setenv("OD_API_BASE_URL", p.URL)
	t.Setenv("OD_API_APP_ID", testutil.AppID)
	t.Setenv("OD_API_APP_KEY", testutil.AppKey)
	t.Setenv("OXD_PLAYER", "true")

	return p
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newOxdApp()
	app.Name = "oxd"
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"oxd"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestApp_lookup(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "root command",
			args:     []string{"test"},
			contains: []string{"test\n/tɛst/ \n", "\n- A procedure for critical evaluation.\n"},
			excludes: []string{"\x1b[", "\r"},
		},
		{
			name: "plain nesting",
			args: []string{"-f", "plain", "rust"},
			contains: []string{
				"\n- a reddish- or yellowish-brown flaky coating of iron oxide.\n",
				"\n  - [literary] \n    a state of deterioration.\n",
			},
			excludes: []string{"\x1b["},
		},
		{
			name:     "compact",
			args:     []string{"-f", "compact", "rust"},
			contains: []string{"a state of deterioration."},
			excludes: []string{"\x1b[", "\r", "<li>"},
		},
		{
			name:     "lookup command",
			args:     []string{"lookup", "--format", "html", "test"},
			contains: []string{"<p>test</p>", "<li>"},
		},
		{
			name:     "styled text",
			args:     []string{"-f", "text", "rust"},
			contains: []string{"\x1b[3mnoun\x1b[0m", "- a reddish- or yellowish-brown flaky coating of iron oxide."},
		},
		{
			name:     "markdown",
			args:     []string{"-f", "markdown", "rust"},
			contains: []string{"a fungal disease of plants."},
		},
		{
			name:     "origins",
			args:     []string{"--origins", "-f", "plain", "rust"},
			contains: []string{"Old English rūst, of Germanic origin."},
		},
		{
			name:     "sound",
			args:     []string{"--sound", "test"},
			contains: []string{"A procedure for critical evaluation."},
		},
		{
			name:     "multiple words",
			args:     []string{"--no-cache", "rust", "test"},
			contains: []string{"a fungal disease of plants.", "A procedure for critical evaluation."},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stdout, _, err := runApp(t, test.args...)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			for _, want := range test.contains {
				if !strings.Contains(stdout, want) {
					t.Errorf("output does not contain %q:\n%s", want, stdout)
				}
			}
			for _, unwanted := range test.excludes {
				if strings.Contains(stdout, unwanted) {
					t.Errorf("output contains %q:\n%s", unwanted, stdout)
				}
			}
		})
	}
}

func TestApp_lookup_notFound(t *testing.T) {
	setupEnv(t)

	stdout, _, err := runApp(t, "rsut", "test")
	if !errors.Is(err, oxd.ErrNotFound) {
		t.Fatalf("Run: want ErrNotFound, got %v", err)
	}
	if want, got := ExitCodeNotFound, exitCode(err); want != got {
		t.Fatalf("exitCode; want: %d, got: %d", want, got)
	}
	// Words that were found are still printed.
	if !strings.Contains(stdout, "A procedure for critical evaluation.") {
		t.Fatalf("output missing found word:\n%s", stdout)
	}
}

func TestApp_errors(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{
			name: "bad format",
			args: []string{"-f", "pdf", "test"},
			code: ExitCodeFlagParseError,
		},
		{
			name: "bad log level",
			args: []string{"--log-level", "loud", "test"},
			code: ExitCodeFlagParseError,
		},
		{
			name: "lookup without words",
			args: []string{"lookup"},
			code: ExitCodeFlagParseError,
		},
		{
			name: "missing config file",
			args: []string{"--config", "/nonexistent/oxd.yaml", "test"},
			code: ExitCodeUnknownError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := runApp(t, test.args...)
			if err == nil {
				t.Fatal("Run: expected error")
			}
			if !errors.Is(err, ErrOxd) {
				t.Errorf("Run: want ErrOxd, got %v", err)
			}
			if want, got := test.code, exitCode(err); want != got {
				t.Fatalf("exitCode; want: %d, got: %d", want, got)
			}
		})
	}
}

func TestApp_roots(t *testing.T) {
	setupEnv(t)

	stdout, _, err := runApp(t, "roots", "rust")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	var rows [][]string
	for _, l := range lines {
		rows = append(rows, strings.Fields(l))
	}
	want := [][]string{
		{"WORD", "ROOT", "ID", "ROOT"},
		{"rust", "rust", "rust"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("roots (-want, +got):\n%s", diff)
	}
}

func TestApp_cache(t *testing.T) {
	p := setupEnv(t)

	for range 2 {
		if _, _, err := runApp(t, "test"); err != nil {
			t.Fatalf("Run: %v", err)
		}
	}
	if want, got := int64(1), p.Requests.Load(); want != got {
		t.Fatalf("requests; want: %d, got: %d", want, got)
	}

	if _, _, err := runApp(t, "--no-cache", "test"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want, got := int64(2), p.Requests.Load(); want != got {
		t.Fatalf("requests; want: %d, got: %d", want, got)
	}
}

func TestApp_version(t *testing.T) {
	stdout, _, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(stdout, "oxd ") {
		t.Fatalf("unexpected version output:\n%s", stdout)
	}
}
