// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package art

import (
	"fmt"
	"sort"
)

// Returns a node of the next biggest size holding all branches of the
// current one. The current node gives up its contents and must not be used
// afterwards.
// artNodes of type Node0 will grow to Node4.
// artNodes of type Node4 will grow to Node16.
// artNodes of type Node16 will grow to Node48.
// artNodes of type Node48 will grow to Node256.
// artNodes of type Node256 can't get any bigger, growing one is a bug.
func (n *artNode) grow() *artNode {
	var other *artNode

	switch n.kind {
	case Node0:
		other = newNode4()

	case Node4:
		other = newNode16()
		n4, other16 := n.node4(), other.node16()

		// Node16 looks keys up with a binary search, so they have to be laid
		// out in order. Node4 keeps them in insertion order.
		order := make([]int, n4.size)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return n4.keys[order[i]] < n4.keys[order[j]]
		})
		for i, from := range order {
			other16.keys[i] = n4.keys[from]
			other16.children[i] = n4.children[from]
		}

	case Node16:
		other = newNode48()
		n16, other48 := n.node16(), other.node48()
		for i := 0; i < n16.size; i++ {
			other48.children[i] = n16.children[i]
			other48.keys[n16.keys[i]] = byte(i + 1)
		}

	case Node48:
		other = newNode256()
		n48, other256 := n.node48(), other.node256()
		for c, i := range n48.keys {
			if i > 0 {
				other256.children[c] = n48.children[i-1]
			}
		}

	default:
		panic(fmt.Sprintf("art: %v can not grow", n.kind))
	}

	other.copyMeta(n)
	n.ref = nil
	return other
}

// Copies the size and terminal flag from the passed in artNode
// to the current node.
func (n *artNode) copyMeta(src *artNode) {
	to := n.node()
	from := src.node()
	to.size = from.size
	to.terminal = from.terminal
}
