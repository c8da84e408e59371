// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// height of a sub-tree, an empty sub-tree has zero height
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// left height minus right height
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute the cached height from the children
func updateHeight(p *Node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// single right rotation, returns the new sub-tree root
//
//	      y              x
//	     / \            / \
//	    x   T3   =>   T1   y
//	   / \                / \
//	  T1  T2             T2  T3
func rotateRight(y *Node) *Node {
	if nil == y || nil == y.left {
		fault.Panic("avl: right rotation without a left child")
	}
	x := y.left
	t2 := x.right

	x.right = y
	y.left = t2

	// y is now below x
	updateHeight(y)
	updateHeight(x)

	return x
}

// single left rotation, returns the new sub-tree root
//
//	    x                  y
//	   / \                / \
//	  T1  y      =>      x   T3
//	     / \            / \
//	    T2  T3         T1  T2
func rotateLeft(x *Node) *Node {
	if nil == x || nil == x.right {
		fault.Panic("avl: left rotation without a right child")
	}
	y := x.right
	t2 := y.left

	y.left = x
	x.right = t2

	updateHeight(x)
	updateHeight(y)

	return y
}
