// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if the key is in the tree
func (tree *Tree) Search(key int) bool {
	return search(key, tree.root)
}

func search(key int, p *Node) bool {
	if nil == p {
		return false
	}

	switch {
	case key < p.key:
		return search(key, p.left)
	case key > p.key:
		return search(key, p.right)
	default:
		return true
	}
}
