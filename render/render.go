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

// Package render renders entry trees as terminal text or HTML fragments.
//
// Rendering never fails. Absent fields render as nothing and sequences render
// their elements in order with no separator. Lexical entries with nothing to
// display and senses without a definition or cross-reference are pruned.
//
// Rendering only reads the tree, so several renderings of the same tree may
// run concurrently.
package render

import (
	"strings"

	"github.com/ianlewis/go-oxd/analyze"
	"github.com/ianlewis/go-oxd/model"
)

// Render writes the entry to canvas using the given target.
func Render(canvas *strings.Builder, e model.RetrieveEntry, t Target) {
	r := renderer{t: t}
	each(canvas, e.Results, r.headword)
}

// String returns the rendering of the entry using the given target.
func String(e model.RetrieveEntry, t Target) string {
	var b strings.Builder
	Render(&b, e, t)
	return b.String()
}

// Origins writes the etymologies of the headword to canvas, one per line.
func Origins(canvas *strings.Builder, h model.HeadwordEntry, t Target) {
	r := renderer{t: t}
	each(canvas, analyze.CollectOrigins(h), r.line)
}

// each renders items in order.
func each[T any](b *strings.Builder, items []T, f func(*strings.Builder, T)) {
	for _, item := range items {
		f(b, item)
	}
}

// sub renders items into a separate buffer and returns the result.
func sub[T any](items []T, f func(*strings.Builder, T)) string {
	var b strings.Builder
	each(&b, items, f)
	return b.String()
}

type renderer struct {
	t Target
}

func (r renderer) headword(b *strings.Builder, h model.HeadwordEntry) {
	b.WriteString(r.t.Block(r.t.Escape(h.Word)))

	// shown is true if the pronunciation was written at the headword level
	// and should not be repeated per entry.
	var shown bool
	if analyze.HasConsistentPronunciation(h) {
		if p := sub(analyze.FirstPronunciations(h), r.pronunciation); p != "" {
			b.WriteString(r.t.Block(p))
			shown = true
		}
	}

	each(b, h.LexicalEntries, func(b *strings.Builder, l model.LexicalEntry) {
		r.lexicalEntry(b, l, shown)
	})
	b.WriteString(r.t.Break())
}

func (r renderer) lexicalEntry(b *strings.Builder, l model.LexicalEntry, shown bool) {
	if analyze.IsEmptyEntries(l.Entries) {
		return
	}
	b.WriteString(r.t.Category(r.t.Escape(l.Label())))
	each(b, l.Entries, func(b *strings.Builder, e model.Entry) {
		r.entry(b, e, shown)
	})
}

func (r renderer) entry(b *strings.Builder, e model.Entry, shown bool) {
	var head strings.Builder
	if !shown {
		each(&head, e.Pronunciations, r.pronunciation)
	}
	each(&head, e.VariantForms, r.variantForm)
	b.WriteString(r.t.Block(head.String()))

	if items := sub(e.Senses, r.senseAt(0)); items != "" {
		b.WriteString(r.t.List(0, items))
	}
}

// senseAt returns a function rendering senses at the given depth.
func (r renderer) senseAt(depth int) func(*strings.Builder, model.Sense) {
	return func(b *strings.Builder, s model.Sense) {
		r.sense(b, s, depth)
	}
}

func (r renderer) sense(b *strings.Builder, s model.Sense, depth int) {
	if analyze.IsEmptySense(s) {
		return
	}

	var body strings.Builder
	each(&body, s.Domains, func(b *strings.Builder, d model.Domain) { r.tag(b, d.Text) })
	each(&body, s.Registers, func(b *strings.Builder, g model.Register) { r.tag(b, g.Text) })
	if body.Len() > 0 {
		body.WriteString(r.t.Break())
	}
	each(&body, s.Definitions, r.line)
	each(&body, s.CrossReferenceMarkers, r.line)
	each(&body, s.Examples, r.example)

	var children string
	if items := sub(s.Subsenses, r.senseAt(depth+1)); items != "" {
		children = r.t.List(depth+1, items)
	}

	b.WriteString(r.t.Item(depth, body.String(), children))
}

// line writes a definition, cross-reference or origin terminated with a
// period and a line break.
func (r renderer) line(b *strings.Builder, s string) {
	b.WriteString(r.t.Escape(s))
	if !strings.HasSuffix(s, ".") {
		b.WriteString(".")
	}
	b.WriteString(r.t.Break())
}

func (r renderer) example(b *strings.Builder, e model.Example) {
	b.WriteString(r.t.Example(r.t.Escape(strings.TrimSpace(e.Text))))
}

func (r renderer) variantForm(b *strings.Builder, v model.VariantForm) {
	b.WriteString(" (also ")
	b.WriteString(r.t.Escape(v.Text))
	if region, ok := v.Region(); ok {
		b.WriteString(" [")
		b.WriteString(r.t.Escape(region.Text))
		b.WriteString("]")
	}
	b.WriteString(") ")
}

func (r renderer) pronunciation(b *strings.Builder, p model.Pronunciation) {
	if p.PhoneticNotation != model.IPA || p.PhoneticSpelling == "" {
		return
	}
	b.WriteString("/")
	b.WriteString(r.t.Escape(p.PhoneticSpelling))
	b.WriteString("/ ")
}

func (r renderer) tag(b *strings.Builder, text string) {
	b.WriteString("[")
	b.WriteString(r.t.Escape(text))
	b.WriteString("] ")
}
