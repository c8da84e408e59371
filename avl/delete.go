// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree
// returns false if the key was not present
func (tree *Tree) Remove(key int) bool {
	removed := false
	tree.root, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the possibly new sub-tree root
func remove(key int, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch {
	case key < p.key:
		p.left, removed = remove(key, p.left)
	case key > p.key:
		p.right, removed = remove(key, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			freeNode(p) // return deleted node to pool
			return child, true
		}

		// two children: take over the successor key and
		// delete the successor from the right branch instead
		p.key = p.right.first().key
		p.right, removed = remove(p.key, p.right)
	}

	if !removed {
		return p, false
	}

	updateHeight(p)

	// every level is checked, a delete can need rotations at
	// several heights
	balance := balanceFactor(p)
	switch {
	case balance > 1 && balanceFactor(p.left) >= 0:
		return rotateRight(p), true

	case balance > 1 && balanceFactor(p.left) < 0:
		p.left = rotateLeft(p.left)
		return rotateRight(p), true

	case balance < -1 && balanceFactor(p.right) <= 0:
		return rotateLeft(p), true

	case balance < -1 && balanceFactor(p.right) > 0:
		p.right = rotateRight(p.right)
		return rotateLeft(p), true
	}
	return p, true
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}
