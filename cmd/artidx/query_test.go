// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDict = "../../testdata/words.txt"

// parseTable turns columnized output into first column -> second column.
func parseTable(t *testing.T, out string) map[string]string {
	t.Helper()
	res := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		require.Len(t, fields, 2, "line %q", line)
		res[fields[0]] = fields[1]
	}
	return res
}

func TestQueryCommand_noTabs(t *testing.T) {
	if strings.ContainsRune(newQueryCmd(cli.NewMockUi()).Help(), '\t') {
		t.Fatal("help has tabs")
	}
}

func TestUsageListsFlagsWithSpaces(t *testing.T) {
	help := newQueryCmd(cli.NewMockUi()).Help()

	assert.NotContains(t, help, "\t")
	assert.Contains(t, help, "Command Options:")
	assert.Contains(t, help, "\n  -dict=<dict>\n     Path to a word list")
	assert.Contains(t, help, "\n  -case=<case>\n     Case policy: sensitive or insensitive. Defaults to \"sensitive\".\n")
	assert.Contains(t, help, `Defaults to "exact".`)
	assert.NotContains(t, help, `Defaults to "".`)
}

func TestQueryCommand(t *testing.T) {
	type param struct {
		desc     string
		args     []string
		expected map[string]string
	}

	testList := []param{
		{
			desc: "Exact and case sensitive by default",
			args: []string{"-dict=" + testDict, "aardvark", "aardvar", "Aaron", "aaron"},
			expected: map[string]string{
				"Word":     "Found",
				"aardvark": "true",
				"aardvar":  "false",
				"Aaron":    "true",
				"aaron":    "false",
			},
		},
		{
			desc: "Prefix and case insensitive",
			args: []string{"-dict=" + testDict, "-match=prefix", "-case=insensitive", "AARD", "zyth", "xylophone"},
			expected: map[string]string{
				"Word":      "Found",
				"AARD":      "true",
				"zyth":      "true",
				"xylophone": "false",
			},
		},
		{
			desc: "Substring",
			args: []string{"-dict=" + testDict, "-match=prefixpostfix", "dvar", "ythu", "qqq"},
			expected: map[string]string{
				"Word": "Found",
				"dvar": "true",
				"ythu": "true",
				"qqq":  "false",
			},
		},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			ui := cli.NewMockUi()
			c := newQueryCmd(ui)

			code := c.Run(tc.args)
			require.Equal(t, 0, code, "stderr: %s", ui.ErrorWriter.String())
			assert.Equal(t, tc.expected, parseTable(t, ui.OutputWriter.String()))
		})
	}
}

func TestQueryCommand_errors(t *testing.T) {
	type param struct {
		desc     string
		args     []string
		expected string
	}

	testList := []param{
		{
			desc:     "No words",
			args:     []string{"-dict=" + testDict},
			expected: "At least one word",
		},
		{
			desc:     "Missing dictionary flag",
			args:     []string{"word"},
			expected: "missing required -dict flag",
		},
		{
			desc:     "Missing dictionary file",
			args:     []string{"-dict=does-not-exist.txt", "word"},
			expected: "open dictionary",
		},
		{
			desc:     "Bad match mode",
			args:     []string{"-dict=" + testDict, "-match=fuzzy", "word"},
			expected: "unknown mode",
		},
		{
			desc:     "Bad case policy",
			args:     []string{"-dict=" + testDict, "-case=upper", "word"},
			expected: "unknown mode",
		},
		{
			desc:     "Unknown flag",
			args:     []string{"-nope", "word"},
			expected: "Error parsing flags",
		},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			ui := cli.NewMockUi()
			c := newQueryCmd(ui)

			code := c.Run(tc.args)
			assert.Equal(t, 1, code)
			assert.Contains(t, ui.ErrorWriter.String(), tc.expected)
			assert.Empty(t, ui.OutputWriter.String())
		})
	}
}
