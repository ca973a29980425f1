// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package dict reads word lists, one word per line.
package dict

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxLineSize bounds a single line. Words longer than that are rejected.
const maxLineSize = 1 << 20

// Load returns the words read from r. Surrounding whitespace is trimmed and
// blank lines are skipped.
func Load(r io.Reader) ([]string, error) {
	var (
		words   []string
		skipped int
		line    int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			skipped++
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", line+1)
	}

	zap.L().Debug("Dictionary loaded", zap.Int("words", len(words)), zap.Int("skipped", skipped))
	return words, nil
}

// LoadFile opens path and loads the words it holds.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dictionary")
	}
	defer f.Close()

	words, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load dictionary %s", path)
	}
	return words, nil
}
