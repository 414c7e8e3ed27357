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

// Package cache implements an on-disk cache of provider responses.
//
// Each response is stored in its own dictzip compressed file named after the
// folded query word. Since dictzip files are valid gzip files they are read
// back with compress/gzip.
package cache

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-oxd/internal/folding"
)

const ext = ".json.dz"

var (
	// ErrMiss indicates the key is not in the cache.
	ErrMiss = errors.New("cache miss")

	errEmptyKey = errors.New("empty key")
)

// Cache is a directory of cached responses.
type Cache struct {
	dir string
}

// Open returns a cache stored in dir, creating the directory if necessary.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating cache directory %q: %w", dir, err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) path(key string) (string, error) {
	k := folding.Key(key)
	if k == "" {
		return "", errEmptyKey
	}
	return filepath.Join(c.dir, url.PathEscape(k)+ext), nil
}

// Get returns the cached data for key. It returns an error wrapping ErrMiss
// if there is none.
func (c *Cache) Get(key string) ([]byte, error) {
	path, err := c.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrMiss, key)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return b, nil
}

// Put stores data for key. The file is written to a temporary name first and
// renamed so concurrent readers never see a partial file.
func (c *Cache) Put(key string, data []byte) (err error) {
	path, err := c.path(key)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(c.dir, ".tmp-*"+ext)
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("creating dictzip writer: %w", err)
	}
	if _, err = z.Write(data); err != nil {
		_ = z.Close()
		_ = f.Close()
		return fmt.Errorf("writing %q: %w", f.Name(), err)
	}
	if err = z.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %q: %w", f.Name(), err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", f.Name(), err)
	}

	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("renaming %q: %w", f.Name(), err)
	}
	return nil
}
