// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present
func (tree *Tree) Insert(key int) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly new sub-tree root
func insert(key int, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}

	added := false
	switch {
	case key < p.key:
		p.left, added = insert(key, p.left)
	case key > p.key:
		p.right, added = insert(key, p.right)
	default: // duplicate: tree unchanged
		return p, false
	}

	updateHeight(p)

	// the inserted key selects the rotation
	balance := balanceFactor(p)
	switch {
	case balance > 1 && key < p.left.key:
		// single LL rotation
		return rotateRight(p), added

	case balance < -1 && key > p.right.key:
		// single RR rotation
		return rotateLeft(p), added

	case balance > 1 && key > p.left.key:
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), added

	case balance < -1 && key < p.right.key:
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), added
	}
	return p, added
}
