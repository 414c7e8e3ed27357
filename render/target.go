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

package render

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// indent is the indentation added per level of sense nesting.
const indent = "  "

// Target is the set of formatting capabilities of an output format. The
// renderer walks the tree once and asks the Target for markup.
type Target interface {
	// Escape returns s in a form safe to embed in the output.
	Escape(s string) string

	// Block wraps a block of inline content such as the headword line.
	Block(s string) string

	// Category wraps a lexical category label.
	Category(label string) string

	// Example wraps an already trimmed example, including its line break.
	Example(s string) string

	// Break returns a line break.
	Break() string

	// List wraps the rendered items of a list of senses at the given depth.
	List(depth int, items string) string

	// Item wraps the body of a sense at the given depth. children is the
	// already wrapped list of subsenses, if any.
	Item(depth int, body, children string) string
}

type textTarget struct {
	// category and example are nil for unstyled text.
	category *lipgloss.Style
	example  *lipgloss.Style
}

// NewText returns a text target whose category labels are italic and whose
// examples are italic blue, as far as the color profile of r allows. A nil
// renderer gives unstyled text.
func NewText(r *lipgloss.Renderer) Target {
	if r == nil {
		return textTarget{}
	}
	category := r.NewStyle().Italic(true)
	example := r.NewStyle().Italic(true).Foreground(lipgloss.Color("4"))
	return textTarget{
		category: &category,
		example:  &example,
	}
}

// Text renders text styled for the terminal on standard output.
var Text = NewText(lipgloss.DefaultRenderer())

// PlainText renders text without styling.
var PlainText = NewText(nil)

// styled applies st to each line of s so that line prefixes added later stay
// outside the escape sequences.
func styled(st *lipgloss.Style, s string) string {
	if st == nil {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = st.Render(l)
	}
	return strings.Join(lines, "\n")
}

func (textTarget) Escape(s string) string { return s }

func (textTarget) Block(s string) string { return s + "\n" }

func (t textTarget) Category(label string) string {
	return "\n" + styled(t.category, label) + "  "
}

func (t textTarget) Example(s string) string {
	return styled(t.example, `"`+s+`"`) + "\n"
}

func (textTarget) Break() string { return "\n" }

func (textTarget) List(_ int, items string) string { return items }

// Item prefixes the first line of body with a bullet and the remaining lines
// with the bullet's width, all shifted by depth indent units. Children are
// already indented by their own depth.
func (textTarget) Item(depth int, body, children string) string {
	pad := strings.Repeat(indent, depth)
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")

	var b strings.Builder
	for i, l := range lines {
		b.WriteString(pad)
		if i == 0 {
			b.WriteString("- ")
		} else {
			b.WriteString(indent)
		}
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString(children)
	return b.String()
}

type htmlTarget struct{}

// HTML renders an HTML fragment.
var HTML Target = htmlTarget{}

func (htmlTarget) Escape(s string) string { return html.EscapeString(s) }

func (htmlTarget) Block(s string) string {
	if s == "" {
		return ""
	}
	return "<p>" + s + "</p>"
}

func (htmlTarget) Category(label string) string {
	return "<p><i>" + label + "</i></p>"
}

func (htmlTarget) Example(s string) string {
	return `<span><i>"` + s + `"</i></span><br>`
}

func (htmlTarget) Break() string { return "<br>" }

func (htmlTarget) List(_ int, items string) string {
	return "<ul>" + items + "</ul>"
}

func (htmlTarget) Item(_ int, body, children string) string {
	return "<li>" + body + children + "</li>"
}
