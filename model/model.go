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

// Package model implements the entry tree returned by the Oxford Dictionaries
// API "words" endpoint.
//
// The tree has the following shape:
//
//	RetrieveEntry
//	  HeadwordEntry (results)
//	    LexicalEntry (lexicalEntries)
//	      Entry (entries)
//	        Sense (senses)
//	          Sense (subsenses)
//
// Values are built once by Decode and are never modified afterwards. Every
// slice field may be nil. A nil slice and an empty slice mean the same thing.
package model

import "encoding/json"

// RetrieveEntry is the result of a single lookup.
type RetrieveEntry struct {
	ID       string          `json:"id,omitempty"`
	Word     string          `json:"word,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`

	// Results are the headwords matching the query.
	Results []HeadwordEntry `json:"results"`
}

// HeadwordEntry is one spelling of the queried word.
type HeadwordEntry struct {
	ID       string `json:"id,omitempty"`
	Language string `json:"language,omitempty"`
	Type     string `json:"type,omitempty"`

	// Word is the display text of the headword. It is required.
	Word string `json:"word"`

	LexicalEntries []LexicalEntry `json:"lexicalEntries"`
}

// LexicalEntry groups entries by part of speech.
type LexicalEntry struct {
	Language string `json:"language,omitempty"`
	Text     string `json:"text,omitempty"`

	// LexicalCategory is the part of speech. It is required.
	LexicalCategory Category `json:"lexicalCategory"`

	Entries      []Entry        `json:"entries"`
	DerivativeOf []DerivativeOf `json:"derivativeOf,omitempty"`
}

// Label returns the display label of the lexical category.
func (l *LexicalEntry) Label() string {
	if l.LexicalCategory.ID != "" {
		return l.LexicalCategory.ID
	}
	return l.LexicalCategory.Text
}

// Entry is a morphological or etymological variant within a category.
type Entry struct {
	Pronunciations []Pronunciation `json:"pronunciations,omitempty"`
	VariantForms   []VariantForm   `json:"variantForms,omitempty"`
	Senses         []Sense         `json:"senses,omitempty"`
	Etymologies    []string        `json:"etymologies,omitempty"`
}

// Sense is a single meaning of a word. Senses nest through Subsenses.
type Sense struct {
	ID                    string     `json:"id,omitempty"`
	Definitions           []string   `json:"definitions,omitempty"`
	Examples              []Example  `json:"examples,omitempty"`
	CrossReferenceMarkers []string   `json:"crossReferenceMarkers,omitempty"`
	Domains               []Domain   `json:"domains,omitempty"`
	Registers             []Register `json:"registers,omitempty"`
	Subsenses             []Sense    `json:"subsenses,omitempty"`
}

// Example is a usage example.
type Example struct {
	Text string `json:"text"`
}

// VariantForm is an alternate spelling of the word.
type VariantForm struct {
	Text    string   `json:"text"`
	Regions []Region `json:"regions,omitempty"`
}

// Region returns the first region tag of the variant form and whether there
// was one.
func (v *VariantForm) Region() (Region, bool) {
	if len(v.Regions) == 0 {
		return Region{}, false
	}
	return v.Regions[0], true
}

// IPA is the phonetic notation rendered by the renderer.
const IPA = "IPA"

// Pronunciation is a phonetic spelling of the word. An empty PhoneticSpelling
// means the provider sent none.
type Pronunciation struct {
	PhoneticSpelling string   `json:"phoneticSpelling,omitempty"`
	PhoneticNotation string   `json:"phoneticNotation"`
	AudioFile        string   `json:"audioFile,omitempty"`
	Dialects         []string `json:"dialects,omitempty"`
}

// Equal reports whether p and o have the same notation and spelling. The
// audio reference and dialects are ignored.
func (p Pronunciation) Equal(o Pronunciation) bool {
	return p.PhoneticNotation == o.PhoneticNotation && p.PhoneticSpelling == o.PhoneticSpelling
}

// Category is a lexical category such as "noun".
type Category struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Domain is a subject field tag such as "medicine".
type Domain struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Register is a usage level tag such as "informal".
type Register struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Region is a regional tag such as "British".
type Region struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DerivativeOf identifies the root word a lexical entry derives from.
type DerivativeOf struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
