// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package art

import (
	"fmt"
	"sort"
	"unsafe"
)

const (
	node4Max   = 4
	node16Max  = 16
	node48Max  = 48
	node256Max = 256
)

type node struct {
	size     int
	terminal bool
}

// Node without children. It only remembers whether a key ends here.
type node0 struct {
	node
}

// Node with 4 children. Keys are kept in insertion order.
type node4 struct {
	node
	keys     [node4Max]byte
	children [node4Max]*artNode
}

// Node with 16 children. Keys are kept sorted.
type node16 struct {
	node
	keys     [node16Max]byte
	children [node16Max]*artNode
}

// Node with 48 children.
// keys[b] is the 1-based position of the child for byte b, 0 means no child.
type node48 struct {
	node
	keys     [node256Max]byte
	children [node48Max]*artNode
}

// Node with 256 children
type node256 struct {
	node
	children [node256Max]*artNode
}

// Defines a single artNode and its attributes.
type artNode struct {
	kind Kind
	ref  unsafe.Pointer
}

// A fresh trie level. It has no room for a branch, so the first byte
// added below it promotes it to a Node4.
func newNode0() *artNode {
	return &artNode{kind: Node0, ref: unsafe.Pointer(&node0{})}
}

// From the ART paper: The smallest node type can store up to 4 child
// pointers and uses an array of length 4 for keys and another
// array of the same length for pointers.
func newNode4() *artNode {
	return &artNode{kind: Node4, ref: unsafe.Pointer(&node4{})}
}

// From the ART paper: This node type is used for storing between 5 and
// 16 child pointers. Like the Node4, the keys and pointers
// are stored in separate arrays at corresponding positions, but
// both arrays have space for 16 entries. A key can be found
// efﬁciently with binary search.
func newNode16() *artNode {
	return &artNode{kind: Node16, ref: unsafe.Pointer(&node16{})}
}

// From the ART paper: As the number of entries in a node increases,
// searching the key array becomes expensive. Therefore, nodes
// with more than 16 pointers do not store the keys explicitly.
// Instead, a 256-element array is used, which can be indexed
// with key bytes directly. If a node has between 17 and 48 child
// pointers, this array stores indexes into a second array which
// contains up to 48 pointers.
func newNode48() *artNode {
	return &artNode{kind: Node48, ref: unsafe.Pointer(&node48{})}
}

// From the ART paper: The largest node type is simply an array of 256
// pointers and is used for storing between 49 and 256 entries.
func newNode256() *artNode {
	return &artNode{kind: Node256, ref: unsafe.Pointer(&node256{})}
}

// Returns the type of the current node.
func (n *artNode) Kind() Kind {
	return n.kind
}

// Size returns the number of populated branches.
func (n *artNode) Size() int {
	return n.node().size
}

// Returns whether or not this particular art node is full.
// A Node0 can never hold a branch and is always full.
func (n *artNode) IsFull() bool {
	if n.kind == Node0 {
		return true
	}
	return n.node().size == n.maxSize()
}

// Returns whether or not this node has no branches.
func (n *artNode) IsEmpty() bool {
	return n.node().size == 0
}

// IsTerminal reports whether some added key ends at this node.
func (n *artNode) IsTerminal() bool {
	return n.node().terminal
}

// Returns the maximum number of children for the current node.
func (n *artNode) maxSize() int {
	switch n.kind {
	case Node4:
		return node4Max
	case Node16:
		return node16Max
	case Node48:
		return node48Max
	case Node256:
		return node256Max
	}
	return 0
}

// findChild returns a pointer to the child slot for the passed in key byte,
// or nil if there is no branch for it.
func (n *artNode) findChild(c byte) **artNode {
	switch n.kind {
	case Node4:
		// Nodes of type Node4 are small enough to simply scan all keys.
		n4 := n.node4()
		for i := 0; i < n4.size; i++ {
			if n4.keys[i] == c {
				return &n4.children[i]
			}
		}

	case Node16:
		n16 := n.node16()
		if i, ok := n16.search(c); ok {
			return &n16.children[i]
		}

	case Node48:
		n48 := n.node48()
		if i := n48.keys[c]; i > 0 {
			return &n48.children[i-1]
		}

	case Node256:
		n256 := n.node256()
		if n256.children[c] != nil {
			return &n256.children[c]
		}
	}

	return nil
}

// search returns the position of c among the sorted keys, or the position
// it has to be inserted at when it is not there.
func (n *node16) search(c byte) (int, bool) {
	i := sort.Search(n.size, func(i int) bool {
		return n.keys[i] >= c
	})
	return i, i < n.size && n.keys[i] == c
}

// addChild stores child under the key byte c.
// The caller makes sure there is no branch for c yet and the node is not full.
func (n *artNode) addChild(c byte, child *artNode) {
	switch n.kind {
	case Node4:
		n4 := n.node4()
		n4.keys[n4.size] = c
		n4.children[n4.size] = child
		n4.size++

	case Node16:
		n16 := n.node16()
		i, _ := n16.search(c)
		// shift the tail one step to the right to keep keys sorted
		copy(n16.keys[i+1:n16.size+1], n16.keys[i:n16.size])
		copy(n16.children[i+1:n16.size+1], n16.children[i:n16.size])
		n16.keys[i] = c
		n16.children[i] = child
		n16.size++

	case Node48:
		n48 := n.node48()
		n48.children[n48.size] = child
		n48.keys[c] = byte(n48.size + 1)
		n48.size++

	case Node256:
		n256 := n.node256()
		n256.children[c] = child
		n256.size++

	default:
		panic(fmt.Sprintf("art: %v can not hold children", n.kind))
	}
}

// add inserts key below the current node.
// It returns the node that must replace n in its parent's slot when n had to
// be promoted to make room, nil when n was updated in place.
func (n *artNode) add(key Key, match Match) *artNode {
	if len(key) == 0 {
		// Substring indexing only records paths, it never ends a key.
		if match != PrefixPostfix {
			n.node().terminal = true
		}
		return nil
	}

	c, rest := key[0], key[1:]
	if child := n.findChild(c); child != nil {
		if other := (*child).add(rest, match); other != nil {
			*child = other
		}
		return nil
	}

	if n.IsFull() {
		other := n.grow()
		if other.add(key, match) != nil {
			panic(fmt.Sprintf("art: %v promoted twice by a single insert", other.kind))
		}
		return other
	}

	n.addChild(c, newChild(rest, match))
	return nil
}

// newChild builds the subtree holding rest below a new branch.
func newChild(rest Key, match Match) *artNode {
	child := newNode0()
	if other := child.add(rest, match); other != nil {
		return other
	}
	return child
}

// exists walks key from the current node. Under Exact the walk has to end on
// a terminal node, other modes only need the path to exist.
func (n *artNode) exists(key Key, match Match) bool {
	current := n
	for ; len(key) > 0; key = key[1:] {
		next := current.findChild(key[0])
		if next == nil {
			return false
		}
		current = *next
	}

	return match != Exact || current.IsTerminal()
}

// children returns the child slots in use. Node256 slots may be nil.
func (n *artNode) children() []*artNode {
	switch n.kind {
	case Node4:
		n4 := n.node4()
		return n4.children[:n4.size]
	case Node16:
		n16 := n.node16()
		return n16.children[:n16.size]
	case Node48:
		n48 := n.node48()
		return n48.children[:n48.size]
	case Node256:
		return n.node256().children[:]
	}
	return nil
}

// each calls cb for the current node and all of its descendants, preorder.
func (n *artNode) each(cb func(*artNode)) {
	cb(n)
	for _, child := range n.children() {
		if child != nil {
			child.each(cb)
		}
	}
}

func (n *artNode) node() *node {
	return (*node)(n.ref)
}

func (n *artNode) node4() *node4 {
	return (*node4)(n.ref)
}

func (n *artNode) node16() *node16 {
	return (*node16)(n.ref)
}

func (n *artNode) node48() *node48 {
	return (*node48)(n.ref)
}

func (n *artNode) node256() *node256 {
	return (*node256)(n.ref)
}

var _ Node = (*artNode)(nil)
