// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"
	"github.com/ryanuber/columnize"
)

func newQueryCmd(ui cli.Ui) *queryCmd {
	c := &queryCmd{UI: ui}
	c.init()
	return c
}

type queryCmd struct {
	UI    cli.Ui
	flags *flag.FlagSet
	index indexFlags
	help  string
}

func (c *queryCmd) init() {
	c.flags = c.index.flagSet()
	c.help = usage(queryHelp, c.flags)
}

func (c *queryCmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("Error parsing flags: %s", err))
		return 1
	}

	words := c.flags.Args()
	if len(words) == 0 {
		c.UI.Error("At least one word to look up is required")
		c.UI.Error("")
		c.UI.Error(c.help)
		return 1
	}

	idx, err := c.index.build()
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error building index: %s", err))
		return 1
	}

	data := []string{"Word\x1fFound"}
	for _, w := range words {
		data = append(data, fmt.Sprintf("%s\x1f%t", w, idx.Exists(w)))
	}
	c.UI.Output(columnize.Format(data, &columnize.Config{Delim: string([]byte{0x1f})}))
	return 0
}

func (c *queryCmd) Synopsis() string {
	return querySynopsis
}

func (c *queryCmd) Help() string {
	return c.help
}

const (
	querySynopsis = "Look words up in an index built from a word list"
	queryHelp     = `
Usage: artidx query -dict=FILE [options] WORD...

  Loads every word of FILE into an index and reports, for each WORD,
  whether it matches under the chosen match mode and case policy.

      $ artidx query -dict=words.txt -match=prefix -case=insensitive Aard
`
)
