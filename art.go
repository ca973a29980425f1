// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package art implements a string index on top of an adaptive radix tree.
//
// Keys are raw byte sequences. Every trie level starts as the smallest node
// kind and is promoted to the next bigger one when a new branch does not fit:
// Node0 -> Node4 -> Node16 -> Node48 -> Node256. Promotion never goes back.
package art

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind - adaptive radix tree node type.
type Kind uint8

// Types of node.
const (
	Node0 Kind = iota
	Node4
	Node16
	Node48
	Node256
)

func (k Kind) String() string {
	switch k {
	case Node0:
		return "Node0"
	case Node4:
		return "Node4"
	case Node16:
		return "Node16"
	case Node48:
		return "Node48"
	case Node256:
		return "Node256"
	}
	return "Unknown"
}

// Key type. Can be any sequence of bytes.
type Key = []byte

// Match defines what Exists treats as a hit.
type Match uint8

const (
	// Exact matches only whole keys that were added.
	Exact Match = iota
	// Prefix matches any prefix of an added key.
	Prefix
	// PrefixPostfix matches any contiguous substring of an added key.
	PrefixPostfix
)

func (m Match) String() string {
	switch m {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	case PrefixPostfix:
		return "prefixpostfix"
	}
	return "unknown"
}

// Case is the case policy applied to keys before indexing and lookup.
type Case uint8

const (
	// Sensitive compares keys byte for byte.
	Sensitive Case = iota
	// Insensitive lower-cases ASCII letters. Other bytes are kept as is.
	Insensitive
)

func (c Case) String() string {
	switch c {
	case Sensitive:
		return "sensitive"
	case Insensitive:
		return "insensitive"
	}
	return "unknown"
}

// ErrUnknownMode is returned when a match mode or case policy name can not be parsed.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMatch returns the match mode with the given name.
func ParseMatch(s string) (Match, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return Exact, nil
	case "prefix":
		return Prefix, nil
	case "prefixpostfix", "prefix-postfix", "substring":
		return PrefixPostfix, nil
	}
	return Exact, errors.Wrapf(ErrUnknownMode, "match %q", s)
}

// ParseCase returns the case policy with the given name.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sensitive":
		return Sensitive, nil
	case "insensitive":
		return Insensitive, nil
	}
	return Sensitive, errors.Wrapf(ErrUnknownMode, "case %q", s)
}

// Node - read only view of a single tree level.
type Node interface {
	Kind() Kind
	Size() int
	IsFull() bool
	IsEmpty() bool
	IsTerminal() bool
}

// Stats holds structural counters of an index.
type Stats struct {
	Nodes    map[Kind]int
	Terminal int
}

// Total returns the number of nodes of all kinds.
func (s Stats) Total() int {
	total := 0
	for _, n := range s.Nodes {
		total += n
	}
	return total
}
