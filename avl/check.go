// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, cached heights, balance and node count
// returns nil if the tree is consistent
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: actual: %d  expected: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// internal: consistency checker, keys must lie strictly between
// the optional low and high bounds; returns the number of nodes
func check(p *Node, low *int, high *int) (int, error) {
	if nil == p {
		return 0, nil
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return 0, fmt.Errorf("%w: at key: %d", fault.ErrKeyOutOfOrder, p.key)
	}

	nl, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	expected := 1 + hl
	if hr > hl {
		expected = 1 + hr
	}
	if p.height != expected {
		return 0, fmt.Errorf("%w: at key: %d  actual: %d  expected: %d", fault.ErrHeightMismatch, p.key, p.height, expected)
	}
	if b := hl - hr; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: at key: %d  balance: %+d", fault.ErrUnbalanced, p.key, b)
	}
	return 1 + nl + nr, nil
}
