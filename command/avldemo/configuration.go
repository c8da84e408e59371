// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "avldemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// Configuration - settings read from the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PrintTree     bool                 `gluamapper:"print_tree" json:"print_tree"`
	Script        []string             `gluamapper:"script" json:"script"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the settings used when no configuration file is given
func defaultConfiguration(dataDirectory string) *Configuration {

	// the Lua mapper decodes into the existing map
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		DataDirectory: dataDirectory,
		PrintTree:     false,
		Script:        nil,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
// an empty file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	if "" == configurationFileName {
		options := defaultConfiguration(defaultDataDirectory)
		return options, finishConfiguration(options, defaultDataDirectory)
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(defaultDataDirectory)
	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	return options, finishConfiguration(options, dataDirectory)
}

// resolve the data directory and make the log directory absolute,
// creating it if necessary
func finishConfiguration(options *Configuration, configDirectory string) error {

	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = configDirectory // same directory as the configuration file
	}
	dataDirectory, err := filepath.Abs(filepath.Clean(options.DataDirectory))
	if nil != err {
		return err
	}
	options.DataDirectory = dataDirectory

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fault.ErrConfigDirPath
	}

	// log file must be a simple name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fault.ErrNotPlainFileName
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	return os.MkdirAll(options.Logging.Directory, 0700)
}

// if not absolute, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
