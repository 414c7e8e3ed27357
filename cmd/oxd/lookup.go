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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-oxd/model"
	"github.com/ianlewis/go-oxd/pronounce"
	"github.com/ianlewis/go-oxd/render"
	"github.com/ianlewis/go-oxd/render/convert"
)

func lookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output `FORMAT` (" + formatNames() + ")",
			Aliases: []string{"f"},
			Value:   string(convert.FormatAuto),
		},
		&cli.BoolFlag{
			Name:               "sound",
			Usage:              "play the pronunciation audio",
			Aliases:            []string{"s"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "origins",
			Usage:              "print word origins after each entry",
			DisableDefaultText: true,
		},
	}
}

func newLookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Print dictionary entries.",
		ArgsUsage: "WORD...",
		Flags:     lookupFlags(),
		Action:    lookup,
	}
}

func formatNames() string {
	names := make([]string, 0, len(convert.Formats))
	for _, f := range convert.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// originTarget returns the target used to print origins in format f.
func originTarget(f convert.Format) render.Target {
	switch f {
	case convert.FormatText:
		return render.Text
	case convert.FormatHTML:
		return render.HTML
	default:
		return render.PlainText
	}
}

func lookup(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: no words given", ErrFlagParse)
	}
	format, err := convert.ParseFormat(c.String("format"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	tty := isTerminal(c.App.Writer)
	format = format.Resolve(tty)
	if format == convert.FormatText && !tty {
		// Styled text was requested explicitly for a pipe or file.
		lipgloss.SetColorProfile(termenv.ANSI)
	}

	e, err := setup(c)
	if err != nil {
		return err
	}

	entries, errs := e.client.Entries(c.Context, c.Args().Slice(), e.cfg.API.Concurrency)

	var found []*model.RetrieveEntry
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		found = append(found, entry)

		out, err := convert.Entry(*entry, format)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(c.App.Writer, out); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}

		if c.Bool("origins") {
			if err := writeOrigins(c.App.Writer, *entry, originTarget(format)); err != nil {
				return err
			}
		}
	}

	if c.Bool("sound") {
		player := &pronounce.Player{
			Command: e.cfg.Audio.PlayerCommand(),
			Fetch:   e.client.Audio,
		}
		for _, entry := range found {
			if err := player.Play(c.Context, pronounce.AudioFiles(*entry)); err != nil {
				e.log.Warn("playing audio", slog.String("error", err.Error()))
			}
		}
	}

	return errors.Join(errs...)
}

func writeOrigins(w io.Writer, e model.RetrieveEntry, t render.Target) error {
	var canvas strings.Builder
	for _, h := range e.Results {
		render.Origins(&canvas, h, t)
	}
	if canvas.Len() == 0 {
		return nil
	}
	if _, err := io.WriteString(w, canvas.String()); err != nil {
		return fmt.Errorf("writing origins: %w", err)
	}
	return nil
}
