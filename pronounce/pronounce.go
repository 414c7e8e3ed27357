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

// Package pronounce plays the audio files referenced by pronunciations.
package pronounce

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path"
	"slices"

	"github.com/ianlewis/go-oxd/model"
)

// ErrNoPlayer indicates no player command is configured.
var ErrNoPlayer = errors.New("no audio player configured")

// AudioFiles returns the audio references of the first lexical entry of each
// headword in order, without duplicates. Pronunciations rarely differ between
// the lexical entries of a headword.
func AudioFiles(e model.RetrieveEntry) []string {
	var files []string
	for _, h := range e.Results {
		if len(h.LexicalEntries) == 0 {
			continue
		}
		for _, entry := range h.LexicalEntries[0].Entries {
			for _, p := range entry.Pronunciations {
				if p.AudioFile != "" && !slices.Contains(files, p.AudioFile) {
					files = append(files, p.AudioFile)
				}
			}
		}
	}
	return files
}

// FetchFunc downloads an audio file.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// Player plays audio files with an external command.
type Player struct {
	// Command is the player command and its arguments. The path of the audio
	// file is appended.
	Command []string

	// Fetch downloads audio files.
	Fetch FetchFunc
}

// Play downloads and plays each file in order. Playback blocks until the
// player command exits.
func (p *Player) Play(ctx context.Context, urls []string) error {
	if len(p.Command) == 0 {
		return ErrNoPlayer
	}

	for _, u := range urls {
		if err := p.play(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) play(ctx context.Context, u string) error {
	b, err := p.Fetch(ctx, u)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "oxd-*"+fileExt(u))
	if err != nil {
		return fmt.Errorf("creating audio file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing audio file: %w", err)
	}

	args := append(slices.Clone(p.Command[1:]), f.Name())
	//nolint:gosec // the player command comes from the user's configuration.
	cmd := exec.CommandContext(ctx, p.Command[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("playing %q: %w: %s", u, err, out)
	}
	return nil
}

// fileExt returns the extension of the file named by the path of the audio
// URL, ignoring any query or fragment.
func fileExt(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return ""
	}
	return path.Ext(parsed.Path)
}
