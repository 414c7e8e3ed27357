// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding normalizes query words and display text.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Spaces trims leading and trailing whitespace and replaces each internal
// whitespace span with a single ASCII space.
type Spaces struct {
	// started is true once a non-space rune was emitted.
	started bool

	// pending is true while inside an internal whitespace span.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *Spaces) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			f.pending = f.started
			nSrc += size
			continue
		}

		// RuneError is written as its full encoding, not size.
		need := utf8.RuneLen(r)
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		f.started = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *Spaces) Reset() {
	*f = Spaces{}
}

// Fold returns s with whitespace folded by [Spaces].
func Fold(s string) string {
	folded, _, err := transform.String(&Spaces{}, s)
	if err != nil {
		// Spaces never returns an error for complete input.
		return s
	}
	return folded
}

// Key returns the lookup key for a query word: whitespace folded and lower
// cased.
func Key(word string) string {
	t := transform.Chain(&Spaces{}, cases.Lower(language.Und))
	key, _, err := transform.String(t, word)
	if err != nil {
		return Fold(word)
	}
	return key
}
