// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package dict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	type param struct {
		desc     string
		input    string
		expected []string
	}

	testList := []param{
		{
			desc:     "Happy case #1 - one word per line",
			input:    "alpha\nbeta\ngamma\n",
			expected: []string{"alpha", "beta", "gamma"},
		},
		{
			desc:     "Happy case #2 - no trailing newline",
			input:    "alpha\nbeta",
			expected: []string{"alpha", "beta"},
		},
		{
			desc:     "Happy case #3 - whitespace is trimmed and blank lines skipped",
			input:    "  alpha \r\n\n\t\nbeta\t\n   \n",
			expected: []string{"alpha", "beta"},
		},
		{
			desc:     "Happy case #4 - inner spaces are kept",
			input:    "hello world\n",
			expected: []string{"hello world"},
		},
		{
			desc:     "Empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			words, err := Load(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, words)
		})
	}
}

func TestLoadLineTooLong(t *testing.T) {
	input := "ok\n" + strings.Repeat("x", maxLineSize+1) + "\n"

	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read line 2")
}

func TestLoadFile(t *testing.T) {
	words, err := LoadFile("../../testdata/words.txt")
	require.NoError(t, err)

	require.NotEmpty(t, words)
	assert.Equal(t, "A", words[0])
	assert.Equal(t, "zythum", words[len(words)-1])
	assert.Contains(t, words, "aardvark")
}

func TestLoadFileFromTempDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o600))

	words, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, words)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "open dictionary")
}
