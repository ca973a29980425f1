// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Command artidx loads a word list into an adaptive radix tree index and
// queries it.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"go.uber.org/zap"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger, err := newLogger(os.Getenv("ARTIDX_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %s\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()

	ui := &cli.BasicUi{Reader: os.Stdin, Writer: os.Stdout, ErrorWriter: os.Stderr}

	c := cli.NewCLI("artidx", version)
	c.Args = args
	c.Commands = commands(ui)

	code, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}
	return code
}

// commands is the mapping of all the available artidx commands.
func commands(ui cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"query": func() (cli.Command, error) {
			return newQueryCmd(ui), nil
		},
		"stats": func() (cli.Command, error) {
			return newStatsCmd(ui), nil
		},
	}
}
