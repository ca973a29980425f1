// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package art

import (
	"go.uber.org/zap"
)

// Index is a set of keys backed by an adaptive radix tree.
// It is not safe for concurrent use, see SyncIndex.
type Index struct {
	root   *artNode
	match  Match
	fold   Case
	logger *zap.Logger
}

// Option configures an Index.
type Option func(*Index)

// WithLogger sets the logger used to report tree growth. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Index) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates an empty index. The match mode and case policy can't be
// changed later.
func New(match Match, fold Case, opts ...Option) *Index {
	t := &Index{
		match:  match,
		fold:   fold,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Match returns the match mode the index was created with.
func (t *Index) Match() Match {
	return t.match
}

// Case returns the case policy the index was created with.
func (t *Index) Case() Case {
	return t.fold
}

// Root returns the root node, or nil if nothing was added yet.
func (t *Index) Root() Node {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Add indexes value. Adding an empty value does nothing.
func (t *Index) Add(value string) {
	t.AddBytes(Key(value))
}

// AddBytes indexes key. Adding an empty key does nothing.
//
// Under PrefixPostfix every suffix of key is added on its own, so any
// substring of key is a prefix of some indexed path.
func (t *Index) AddBytes(key Key) {
	if len(key) == 0 {
		return
	}
	key = t.normalize(key)

	switch t.match {
	case PrefixPostfix:
		for i := range key {
			t.insert(key[i:])
		}
	default:
		t.insert(key)
	}
}

// Exists reports whether value matches the index under its match mode.
// An empty value never matches.
func (t *Index) Exists(value string) bool {
	return t.ExistsBytes(Key(value))
}

// ExistsBytes reports whether key matches the index under its match mode.
func (t *Index) ExistsBytes(key Key) bool {
	if len(key) == 0 || t.root == nil {
		return false
	}
	return t.root.exists(t.normalize(key), t.match)
}

// Stats walks the whole tree and counts its nodes.
func (t *Index) Stats() Stats {
	s := Stats{Nodes: make(map[Kind]int)}
	if t.root == nil {
		return s
	}

	t.root.each(func(n *artNode) {
		s.Nodes[n.kind]++
		if n.IsTerminal() {
			s.Terminal++
		}
	})
	return s
}

func (t *Index) insert(key Key) {
	if t.root == nil {
		t.root = newNode0()
	}

	if other := t.root.add(key, t.match); other != nil {
		t.logger.Debug("root promoted",
			zap.Stringer("from", t.root.kind),
			zap.Stringer("to", other.kind),
			zap.Int("size", other.Size()))
		t.root = other
	}
}

// normalize applies the case policy. Only ASCII letters are folded.
func (t *Index) normalize(key Key) Key {
	if t.fold == Sensitive {
		return key
	}

	folded := make(Key, len(key))
	for i, c := range key {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		folded[i] = c
	}
	return folded
}
