// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// the operations a tree must support to be driven by commands
type keySet interface {
	Insert(key int) bool
	Remove(key int) bool
	Search(key int) bool
	Count() int
	Check() error
	Print(w io.Writer) int
}

// a single parsed command and its keys
type command struct {
	name string
	keys []int
}

// canonical command names, the bool is true if keys are required
var commandNames = map[string]struct {
	name     string
	needKeys bool
}{
	"insert":    {"insert", true},
	"add":       {"insert", true},
	"i":         {"insert", true},
	"remove":    {"remove", true},
	"delete":    {"remove", true},
	"rm":        {"remove", true},
	"r":         {"remove", true},
	"search":    {"search", true},
	"find":      {"search", true},
	"s":         {"search", true},
	"print":     {"print", false},
	"p":         {"print", false},
	"check":     {"check", false},
	"c":         {"check", false},
	"scenarios": {"scenarios", false},
	"sample":    {"sample", false},
}

// split a list of words into commands, a command word is followed by
// zero or more integer keys
func parseCommands(words []string) ([]command, error) {
	commands := make([]command, 0, len(words))

	for _, word := range words {
		if n, err := strconv.Atoi(word); nil == err {
			if 0 == len(commands) || !commandNames[commands[len(commands)-1].name].needKeys {
				return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, word)
			}
			last := &commands[len(commands)-1]
			last.keys = append(last.keys, n)
			continue
		}
		c, ok := commandNames[strings.ToLower(word)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidCommand, word)
		}
		if err := checkKeys(commands); nil != err {
			return nil, err
		}
		commands = append(commands, command{name: c.name})
	}

	if err := checkKeys(commands); nil != err {
		return nil, err
	}
	return commands, nil
}

// the most recent command must have its keys before the next begins
func checkKeys(commands []command) error {
	if 0 == len(commands) {
		return nil
	}
	last := commands[len(commands)-1]
	if commandNames[last.name].needKeys && 0 == len(last.keys) {
		return fmt.Errorf("%w: %s", fault.ErrMissingKeys, last.name)
	}
	return nil
}

// script lines from the configuration are split into words
func parseScript(lines []string) ([]command, error) {
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		words = append(words, strings.Fields(line)...)
	}
	return parseCommands(words)
}

// applies commands to a tree writing results to out
type runner struct {
	log       *logger.L
	out       io.Writer
	tree      keySet
	printTree bool
}

func newRunner(log *logger.L, out io.Writer, tree keySet, printTree bool) *runner {
	return &runner{
		log:       log,
		out:       out,
		tree:      tree,
		printTree: printTree,
	}
}

// run the commands in order, stopping at the first failure
func (r *runner) run(commands []command) error {
	for _, c := range commands {
		r.log.Debugf("command: %s  keys: %v", c.name, c.keys)

		switch c.name {
		case "insert":
			for _, key := range c.keys {
				added := r.tree.Insert(key)
				r.log.Infof("insert: %d  added: %t  count: %d", key, added, r.tree.Count())
			}
			r.show()

		case "remove":
			for _, key := range c.keys {
				removed := r.tree.Remove(key)
				r.log.Infof("remove: %d  removed: %t  count: %d", key, removed, r.tree.Count())
			}
			r.show()

		case "search":
			for _, key := range c.keys {
				found := r.tree.Search(key)
				r.log.Infof("search: %d  found: %t", key, found)
				if found {
					fmt.Fprintf(r.out, "search %d: found\n", key)
				} else {
					fmt.Fprintf(r.out, "search %d: not found\n", key)
				}
			}

		case "print":
			depth := r.tree.Print(r.out)
			r.log.Debugf("print depth: %d", depth)

		case "check":
			if err := r.tree.Check(); nil != err {
				r.log.Errorf("check failed: %s", err)
				return fmt.Errorf("%w: %s", fault.ErrTreeInconsistent, err)
			}
			fmt.Fprintf(r.out, "check: ok  count: %d\n", r.tree.Count())

		case "scenarios":
			if err := runScenarios(r.log, r.out); nil != err {
				return err
			}

		case "sample":
			runSample(r.log, r.out)

		default:
			return fmt.Errorf("%w: %q", fault.ErrInvalidCommand, c.name)
		}
	}
	return nil
}

// optionally draw the tree after a change
func (r *runner) show() {
	if r.printTree {
		r.tree.Print(r.out)
	}
}
