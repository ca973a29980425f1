// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	art "github.com/k33nice/artindex"
	"github.com/k33nice/artindex/internal/dict"
)

// indexFlags are the flags shared by every command that builds an index.
type indexFlags struct {
	dict  string
	match string
	fold  string
}

func (f *indexFlags) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.dict, "dict", "",
		"Path to a word list with one word per line. Required.")
	fs.StringVar(&f.match, "match", art.Exact.String(),
		"Match mode used by queries: exact, prefix or prefixpostfix.")
	fs.StringVar(&f.fold, "case", art.Sensitive.String(),
		"Case policy: sensitive or insensitive.")
	return fs
}

// build loads the dictionary into a new index.
func (f *indexFlags) build() (*art.Index, error) {
	if f.dict == "" {
		return nil, errors.New("missing required -dict flag")
	}
	match, err := art.ParseMatch(f.match)
	if err != nil {
		return nil, err
	}
	fold, err := art.ParseCase(f.fold)
	if err != nil {
		return nil, err
	}

	words, err := dict.LoadFile(f.dict)
	if err != nil {
		return nil, err
	}

	idx := art.New(match, fold, art.WithLogger(zap.L()))
	for _, w := range words {
		idx.Add(w)
	}
	zap.L().Info("Index built",
		zap.String("dict", f.dict),
		zap.Int("words", len(words)),
		zap.Stringer("match", match),
		zap.Stringer("case", fold))
	return idx, nil
}

// usage appends the flags to the help text, indented with spaces only.
func usage(txt string, fs *flag.FlagSet) string {
	var buf bytes.Buffer
	buf.WriteString(strings.TrimSpace(txt))
	buf.WriteString("\n\nCommand Options:\n")

	fs.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(&buf, "\n  -%s=<%s>\n", f.Name, f.Name)
		fmt.Fprintf(&buf, "     %s", f.Usage)
		if f.DefValue != "" {
			fmt.Fprintf(&buf, " Defaults to %q.", f.DefValue)
		}
		buf.WriteString("\n")
	})
	return buf.String()
}
