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

// Package analyze implements predicates and extraction functions over an
// entry tree. None of the functions modify their input.
package analyze

import (
	"slices"

	"github.com/ianlewis/go-oxd/model"
)

// IsEmptyEntries returns true if no entry has pronunciations, senses or
// variant forms. A lexical entry whose entries are empty has nothing to
// display.
func IsEmptyEntries(entries []model.Entry) bool {
	for _, e := range entries {
		if len(e.Pronunciations) > 0 || len(e.Senses) > 0 || len(e.VariantForms) > 0 {
			return false
		}
	}
	return true
}

// IsEmptySense returns true if the sense has neither definitions nor
// cross-reference markers. Examples, tags and subsenses alone do not make a
// sense worth displaying.
func IsEmptySense(s model.Sense) bool {
	return len(s.Definitions) == 0 && len(s.CrossReferenceMarkers) == 0
}

// HasConsistentPronunciation reports whether every pronunciation of the first
// entry under the headword also appears in every other entry. Headwords with
// zero or one entries are consistent.
//
// NOTE: the check is one-directional. An entry carrying extra pronunciations
// beyond those of the first entry is still considered consistent.
func HasConsistentPronunciation(h model.HeadwordEntry) bool {
	var all [][]model.Pronunciation
	for _, l := range h.LexicalEntries {
		for _, e := range l.Entries {
			all = append(all, e.Pronunciations)
		}
	}
	if len(all) <= 1 {
		return true
	}

	first := all[0]
	for _, other := range all[1:] {
		for _, p := range first {
			if !slices.ContainsFunc(other, p.Equal) {
				return false
			}
		}
	}
	return true
}

// FirstPronunciations returns the pronunciations of the first entry of the
// first lexical entry, or nil if the headword has no entries.
func FirstPronunciations(h model.HeadwordEntry) []model.Pronunciation {
	if len(h.LexicalEntries) == 0 || len(h.LexicalEntries[0].Entries) == 0 {
		return nil
	}
	return h.LexicalEntries[0].Entries[0].Pronunciations
}

// CollectRoots returns the derivative-of roots of every lexical entry in the
// tree in encounter order. Duplicates are kept.
func CollectRoots(r model.RetrieveEntry) []model.DerivativeOf {
	var roots []model.DerivativeOf
	for _, h := range r.Results {
		for _, l := range h.LexicalEntries {
			roots = append(roots, l.DerivativeOf...)
		}
	}
	return roots
}

// CollectOrigins returns the etymologies of every entry under the headword in
// order.
func CollectOrigins(h model.HeadwordEntry) []string {
	var origins []string
	for _, l := range h.LexicalEntries {
		for _, e := range l.Entries {
			origins = append(origins, e.Etymologies...)
		}
	}
	return origins
}
