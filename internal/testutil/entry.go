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
	"encoding/json"
	"testing"

	"github.com/ianlewis/go-oxd/model"
)

// IPA returns an IPA pronunciation with the given spelling.
func IPA(spelling string) model.Pronunciation {
	return model.Pronunciation{
		PhoneticNotation: model.IPA,
		PhoneticSpelling: spelling,
	}
}

// Def returns a sense with the given definitions.
func Def(defs ...string) model.Sense {
	return model.Sense{Definitions: defs}
}

// Headword returns a retrieve entry with a single headword.
func Headword(word string, lexicalEntries ...model.LexicalEntry) model.RetrieveEntry {
	return model.RetrieveEntry{
		ID:   word,
		Word: word,
		Results: []model.HeadwordEntry{
			{
				ID:             word,
				Word:           word,
				LexicalEntries: lexicalEntries,
			},
		},
	}
}

// Lexical returns a lexical entry for the category with the given entries.
func Lexical(category string, entries ...model.Entry) model.LexicalEntry {
	return model.LexicalEntry{
		LexicalCategory: model.Category{ID: category, Text: category},
		Entries:         entries,
	}
}

// TestWord returns the entry for "test" with one IPA pronunciation and one
// sense.
func TestWord() model.RetrieveEntry {
	return Headword("test", Lexical("noun", model.Entry{
		Pronunciations: []model.Pronunciation{IPA("tɛst")},
		Senses:         []model.Sense{Def("A procedure for critical evaluation")},
	}))
}

// RustWord returns the entry for "rust" with two lexical categories, nested
// senses, tags, examples, variant forms, roots and etymologies.
func RustWord() model.RetrieveEntry {
	pron := []model.Pronunciation{IPA("rəst")}
	e := Headword("rust",
		model.LexicalEntry{
			LexicalCategory: model.Category{ID: "noun", Text: "Noun"},
			Entries: []model.Entry{
				{
					Etymologies:    []string{"Old English rūst, of Germanic origin"},
					Pronunciations: pron,
					VariantForms: []model.VariantForm{
						{Text: "roust", Regions: []model.Region{{ID: "scottish", Text: "Scottish"}}},
					},
					Senses: []model.Sense{
						{
							Definitions: []string{"a reddish- or yellowish-brown flaky coating of iron oxide"},
							Examples:    []model.Example{{Text: " the car had rust on the doors "}},
							Subsenses: []model.Sense{
								{
									Definitions: []string{"a state of deterioration."},
									Registers:   []model.Register{{ID: "literary", Text: "literary"}},
								},
							},
						},
						{
							Definitions: []string{"a fungal disease of plants"},
							Domains:     []model.Domain{{ID: "botany", Text: "Botany"}},
						},
					},
				},
			},
		},
		model.LexicalEntry{
			LexicalCategory: model.Category{ID: "verb", Text: "Verb"},
			DerivativeOf:    []model.DerivativeOf{{ID: "rust", Text: "rust"}},
			Entries: []model.Entry{
				{
					Pronunciations: pron,
					Senses: []model.Sense{
						{CrossReferenceMarkers: []string{"see corrode"}},
					},
				},
			},
		},
	)
	return e
}

// MakeEntryJSON returns the wire encoding of the entry.
func MakeEntryJSON(t *testing.T, e model.RetrieveEntry) []byte {
	t.Helper()

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
