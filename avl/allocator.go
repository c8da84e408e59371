// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/fault"
)

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int   // key for ordering
	height int   // 1 + max(height(left), height(right))
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key int) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			m.Unlock()
			fault.Panicf("node pool corrupt: empty list with free count: %d", freeNodes)
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:    key,
			height: 1,
		}
	}
	p := pool
	pool = p.left
	p.key = key
	p.height = 1
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.left = pool // use as free list pointer

	node.right = nil
	node.key = 0
	node.height = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// PoolStats - total nodes ever allocated and the number currently
// waiting in the pool for reuse
func PoolStats() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
