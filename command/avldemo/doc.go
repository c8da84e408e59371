// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avldemo - exercise an integer AVL tree from the command line
//
// Arguments are a sequence of commands applied in order to a single
// tree:
//
//   insert|add|i K...      insert keys, duplicates are ignored
//   remove|delete|rm|r K...  remove keys, absent keys are ignored
//   search|find|s K...     report whether each key is present
//   print|p                draw the tree
//   check|c                verify order, heights and balance
//   scenarios              run the built-in rotation scenarios
//   sample                 run a short demonstration
//
// With no commands the scenarios are run followed by the sample.  An
// optional Lua configuration file supplies logging settings and a
// script of commands that run before those on the command line.
package main
