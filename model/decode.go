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

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrDecode indicates the response could not be decoded.
	ErrDecode = errors.New("decoding entry")

	// ErrInvalidEntry indicates the decoded entry is missing a required field.
	ErrInvalidEntry = errors.New("invalid entry")
)

// Decode reads a RetrieveEntry from r and validates it. An entry that fails
// validation is rejected as a whole.
func Decode(r io.Reader) (*RetrieveEntry, error) {
	var e RetrieveEntry
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// Validate checks the fields the renderer relies on: every headword has a
// word and every lexical entry has a category label.
func (e *RetrieveEntry) Validate() error {
	for i := range e.Results {
		h := &e.Results[i]
		if h.Word == "" {
			return fmt.Errorf("%w: results[%d]: missing word", ErrInvalidEntry, i)
		}
		for j := range h.LexicalEntries {
			if h.LexicalEntries[j].Label() == "" {
				return fmt.Errorf("%w: results[%d].lexicalEntries[%d]: missing lexicalCategory",
					ErrInvalidEntry, i, j)
			}
		}
	}
	return nil
}
