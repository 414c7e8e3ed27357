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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	oxd "github.com/ianlewis/go-oxd"
	"github.com/ianlewis/go-oxd/cache"
	"github.com/ianlewis/go-oxd/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeNotFound is the exit code when a word has no entry.
	ExitCodeNotFound
)

// ErrOxd is a parent error for all command errors.
var ErrOxd = errors.New("oxd")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrOxd)

// ErrConfig indicates the configuration could not be loaded.
var ErrConfig = fmt.Errorf("%w: loading configuration", ErrOxd)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// which would conflict with words given to the root command.
	//
	// This is done because `oxd --help rust` would display a
	// "command rust not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// env holds the state shared by commands.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	client *oxd.Client
}

// setup loads the configuration and builds the client for a command.
func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	log := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	var respCache *cache.Cache
	if !cfg.Cache.Disabled && !c.Bool("no-cache") {
		respCache, err = cache.Open(cfg.Cache.Dir)
		if err != nil {
			log.Warn("cache disabled", slog.String("error", err.Error()))
			respCache = nil
		}
	}

	client := oxd.NewClient(&oxd.Options{
		BaseURL:  cfg.API.BaseURL,
		Language: cfg.API.Language,
		AppID:    cfg.API.AppID,
		AppKey:   cfg.API.AppKey,
		Timeout:  cfg.API.Timeout,
		Cache:    respCache,
		Logger:   log,
	})

	return &env{
		cfg:    cfg,
		log:    log,
		client: client,
	}, nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s
`, c.App.Name, versionInfo.GitVersion, c.App.Copyright, versionInfo.String())
	return err
}

func newOxdApp() *cli.App {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "read configuration from `FILE`",
			Aliases: []string{"c"},
		},
		&cli.BoolFlag{
			Name:               "no-cache",
			Usage:              "do not read or write the response cache",
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log `LEVEL` (debug, info, warn, error)",
		},
	}
	flags = append(flags, lookupFlags()...)
	flags = append(flags,
		// Special flags are shown at the end.
		&cli.BoolFlag{
			Name:               "help",
			Usage:              "print this help text and exit",
			Aliases:            []string{"h"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "version",
			Usage:              "print version information and exit",
			Aliases:            []string{"V"},
			DisableDefaultText: true,
		},
	)

	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Look up words in the Oxford Dictionaries.",
		ArgsUsage: "WORD...",
		Description: strings.Join([]string{
			"Oxford Dictionaries client written in Go.",
			"http://github.com/ianlewis/go-oxd",
		}, "\n"),
		Flags:           flags,
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			if c.Bool("help") || c.NArg() == 0 {
				check(cli.ShowAppHelp(c))
				return nil
			}

			return lookup(c)
		},
		Commands: []*cli.Command{
			newLookupCommand(),
			newRootsCommand(),
		},
	}
}
