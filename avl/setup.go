// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Destroy - release every node back to the pool leaving an empty tree
func (tree *Tree) Destroy() {
	destroy(tree.root)
	tree.root = nil
	tree.count = 0
}

// children are released before their parent
func destroy(p *Node) {
	if nil == p {
		return
	}
	destroy(p.left)
	destroy(p.right)
	freeNode(p)
}
