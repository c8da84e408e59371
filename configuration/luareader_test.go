// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type treeConfiguration struct {
	Name    string   `gluamapper:"name"`
	Print   bool     `gluamapper:"print_tree"`
	Insert  []int    `gluamapper:"insert"`
	Script  []string `gluamapper:"script"`
	Missing string   `gluamapper:"missing"`
}

func writeConfig(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write config error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeConfig(t, `
local M = {}
M.name = "from " .. arg[0]
M.print_tree = true
M.insert = { 30, 20, 10 }
M.script = { "insert 5", "remove 30" }
return M
`)
	defer cleanup()

	c := treeConfiguration{Missing: "default"}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "from "+fileName, c.Name, "wrong name")
	assert.True(t, c.Print, "wrong print_tree")
	assert.Equal(t, []int{30, 20, 10}, c.Insert, "wrong insert list")
	assert.Equal(t, []string{"insert 5", "remove 30"}, c.Script, "wrong script")
	assert.Equal(t, "default", c.Missing, "default was overwritten")
}

func TestParseConfigurationNotStruct(t *testing.T) {
	fileName, cleanup := writeConfig(t, "return {}\n")
	defer cleanup()

	n := 0
	err := configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")

	err = configuration.ParseConfigurationFile(fileName, treeConfiguration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")
}

func TestParseConfigurationNotTable(t *testing.T) {
	fileName, cleanup := writeConfig(t, "return 42\n")
	defer cleanup()

	c := treeConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.ErrNotTableResult, err, "wrong error")
}

func TestParseConfigurationSyntaxError(t *testing.T) {
	fileName, cleanup := writeConfig(t, "local M = {\n")
	defer cleanup()

	c := treeConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.NotNil(t, err, "expected syntax error")
}
