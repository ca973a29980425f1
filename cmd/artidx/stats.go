// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"
	"github.com/ryanuber/columnize"

	art "github.com/k33nice/artindex"
)

func newStatsCmd(ui cli.Ui) *statsCmd {
	c := &statsCmd{UI: ui}
	c.init()
	return c
}

type statsCmd struct {
	UI    cli.Ui
	flags *flag.FlagSet
	index indexFlags
	help  string
}

func (c *statsCmd) init() {
	c.flags = c.index.flagSet()
	c.help = usage(statsHelp, c.flags)
}

func (c *statsCmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("Error parsing flags: %s", err))
		return 1
	}
	if len(c.flags.Args()) > 0 {
		c.UI.Error(fmt.Sprintf("Too many arguments (expected 0, got %d)", len(c.flags.Args())))
		return 1
	}

	idx, err := c.index.build()
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error building index: %s", err))
		return 1
	}

	stats := idx.Stats()
	data := []string{"Kind\x1fCount"}
	for _, k := range []art.Kind{art.Node0, art.Node4, art.Node16, art.Node48, art.Node256} {
		data = append(data, fmt.Sprintf("%s\x1f%d", k, stats.Nodes[k]))
	}
	data = append(data,
		fmt.Sprintf("Terminal\x1f%d", stats.Terminal),
		fmt.Sprintf("Total\x1f%d", stats.Total()))
	c.UI.Output(columnize.Format(data, &columnize.Config{Delim: string([]byte{0x1f})}))
	return 0
}

func (c *statsCmd) Synopsis() string {
	return statsSynopsis
}

func (c *statsCmd) Help() string {
	return c.help
}

const (
	statsSynopsis = "Show the node layout of an index built from a word list"
	statsHelp     = `
Usage: artidx stats -dict=FILE [options]

  Loads every word of FILE into an index and prints how many nodes of each
  kind the tree holds.
`
)
