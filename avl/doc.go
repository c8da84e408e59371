// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of distinct integer keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and the tree is
// rebalanced by single or double rotations as each recursive insert
// or delete unwinds towards the root.
//
// Inserting a key that is already present leaves the tree unchanged
// and deleting or searching for an absent key is not an error.
// Deleting a node with two children overwrites its key with the
// in-order successor (the minimum of the right sub-tree) and then
// deletes the successor from the right sub-tree.
package avl
