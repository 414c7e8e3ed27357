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

// Package convert converts rendered entries into other output formats.
package convert

import (
	"errors"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/k3a/html2text"
	"github.com/microcosm-cc/bluemonday"

	"github.com/ianlewis/go-oxd/model"
	"github.com/ianlewis/go-oxd/render"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown format")

// Format is an output format.
type Format string

const (
	// FormatAuto selects FormatText on a terminal and FormatPlain otherwise.
	FormatAuto Format = "auto"

	// FormatText is text styled for the terminal.
	FormatText Format = "text"

	// FormatPlain is unstyled text with the same layout as FormatText.
	FormatPlain Format = "plain"

	// FormatCompact is unstyled text converted from the HTML rendering. Senses
	// are separated by blank lines instead of being bulleted and indented.
	FormatCompact Format = "compact"

	// FormatHTML is a sanitized HTML fragment.
	FormatHTML Format = "html"

	// FormatMarkdown is Markdown converted from the HTML rendering.
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported format names.
var Formats = []Format{FormatAuto, FormatText, FormatPlain, FormatCompact, FormatHTML, FormatMarkdown}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Resolve returns the concrete format for f. FormatAuto resolves to
// FormatText if tty is true and FormatPlain otherwise.
func (f Format) Resolve(tty bool) Format {
	if f != FormatAuto {
		return f
	}
	if tty {
		return FormatText
	}
	return FormatPlain
}

var policy = bluemonday.UGCPolicy()

// Sanitize removes anything from an HTML fragment that is not safe user
// generated content.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}

// PlainText converts an HTML fragment to unstyled text with Unix line breaks.
func PlainText(html string) string {
	return html2text.HTML2TextWithOptions(html, html2text.WithUnixLineBreaks())
}

// Markdown converts an HTML fragment to Markdown.
func Markdown(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting to markdown: %w", err)
	}
	return md, nil
}

// Entry renders the entry in the given format. FormatAuto must be resolved
// before calling Entry.
func Entry(e model.RetrieveEntry, f Format) (string, error) {
	switch f {
	case FormatText:
		return render.String(e, render.Text), nil
	case FormatPlain:
		return render.String(e, render.PlainText), nil
	case FormatCompact:
		return PlainText(render.String(e, render.HTML)), nil
	case FormatHTML:
		return Sanitize(render.String(e, render.HTML)), nil
	case FormatMarkdown:
		return Markdown(render.String(e, render.HTML))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
