// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// a fixed sequence of operations and the expected membership afterwards
type scenario struct {
	name    string
	insert  []int
	remove  []int
	present []int
	absent  []int
	height  int // expected final height, zero to skip
}

var scenarios = []scenario{
	{
		name:   "empty tree",
		absent: []int{10},
	},
	{
		name:    "single insertion",
		insert:  []int{10},
		present: []int{10},
		absent:  []int{20},
		height:  1,
	},
	{
		name:    "multiple insertions, no rotation",
		insert:  []int{10, 5, 15},
		present: []int{5, 10, 15},
		height:  2,
	},
	{
		name:    "left-left rotation",
		insert:  []int{30, 20, 10},
		present: []int{10, 20, 30},
		height:  2,
	},
	{
		name:    "right-right rotation",
		insert:  []int{10, 20, 30},
		present: []int{10, 20, 30},
		height:  2,
	},
	{
		name:    "left-right rotation",
		insert:  []int{30, 10, 20},
		present: []int{10, 20, 30},
		height:  2,
	},
	{
		name:    "right-left rotation",
		insert:  []int{10, 30, 20},
		present: []int{10, 20, 30},
		height:  2,
	},
	{
		name:    "delete leaf, one child and two children",
		insert:  []int{10, 5, 15, 3, 7, 12, 17},
		remove:  []int{3, 5, 10},
		present: []int{7, 12, 15, 17},
		absent:  []int{3, 5, 10},
		height:  3,
	},
	{
		name:    "delete causing rebalance",
		insert:  []int{20, 10, 30, 5},
		remove:  []int{30},
		present: []int{5, 10, 20},
		absent:  []int{30},
		height:  2,
	},
	{
		name:    "delete non-existent",
		insert:  []int{10},
		remove:  []int{100},
		present: []int{10},
		absent:  []int{100},
		height:  1,
	},
}

// run each scenario on a fresh tree, checking consistency after every
// removal as well as at the end
func runScenarios(log *logger.L, out io.Writer) error {
	for i, s := range scenarios {
		if err := s.run(); nil != err {
			log.Errorf("scenario %d: %s: %s", i+1, s.name, err)
			return fmt.Errorf("%w: %d (%s): %s", fault.ErrScenarioFailed, i+1, s.name, err)
		}
		log.Infof("scenario %d: %s: passed", i+1, s.name)
		fmt.Fprintf(out, "scenario %d (%s): passed\n", i+1, s.name)
	}
	return nil
}

func (s scenario) run() error {
	tree := avl.New()
	defer tree.Destroy()

	for _, key := range s.insert {
		tree.Insert(key)
	}
	if err := tree.Check(); nil != err {
		return err
	}
	for _, key := range s.remove {
		tree.Remove(key)
		if tree.Search(key) {
			return fmt.Errorf("removed key: %d still present", key)
		}
		if err := tree.Check(); nil != err {
			return err
		}
	}
	for _, key := range s.present {
		if !tree.Search(key) {
			return fmt.Errorf("key: %d not found", key)
		}
	}
	for _, key := range s.absent {
		if tree.Search(key) {
			return fmt.Errorf("key: %d unexpectedly found", key)
		}
	}
	if 0 != s.height && s.height != tree.Height() {
		return fmt.Errorf("height: %d  expected: %d", tree.Height(), s.height)
	}
	return nil
}

// a short demonstration on a single tree
func runSample(log *logger.L, out io.Writer) {
	tree := avl.New()
	defer tree.Destroy()

	fmt.Fprintln(out, "inserting elements…")
	for _, key := range []int{10, 20, 30, 40, 50, 25} {
		tree.Insert(key)
	}
	log.Infof("sample: count: %d  height: %d", tree.Count(), tree.Height())
	tree.Print(out)

	for _, key := range []int{25, 100} {
		if tree.Search(key) {
			fmt.Fprintf(out, "searching for %d: found\n", key)
		} else {
			fmt.Fprintf(out, "searching for %d: not found\n", key)
		}
	}

	fmt.Fprintln(out, "deleting 10 (leaf)…")
	tree.Remove(10)
	tree.Print(out)
}
