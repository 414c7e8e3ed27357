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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-oxd/analyze"
)

func newRootsCommand() *cli.Command {
	return &cli.Command{
		Name:      "roots",
		Usage:     "Print the root words of derived forms.",
		ArgsUsage: "WORD...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: no words given", ErrFlagParse)
			}

			e, err := setup(c)
			if err != nil {
				return err
			}

			words := c.Args().Slice()
			entries, errs := e.client.Entries(c.Context, words, e.cfg.API.Concurrency)

			tbl := table.New("WORD", "ROOT ID", "ROOT").WithWriter(c.App.Writer)
			for i, entry := range entries {
				if entry == nil {
					continue
				}
				for _, r := range analyze.CollectRoots(*entry) {
					tbl.AddRow(words[i], r.ID, r.Text)
				}
			}
			tbl.Print()

			return errors.Join(errs...)
		},
	}
}
