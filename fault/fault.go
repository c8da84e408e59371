// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigDirPath        = InvalidError("config is not a folder")
	ErrCountMismatch        = InvalidError("node count mismatch")
	ErrHeightMismatch       = InvalidError("cached height mismatch")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOutOfOrder        = InvalidError("key out of order")
	ErrMissingKeys          = InvalidError("command requires at least one key")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotPlainFileName     = InvalidError("file is not a plain name")
	ErrNotTableResult       = InvalidError("configuration did not return a table")
	ErrScenarioFailed       = ProcessError("scenario failed")
	ErrTreeInconsistent     = ProcessError("tree is inconsistent")
	ErrUnbalanced           = InvalidError("sub-tree is unbalanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
// these also see through errors wrapped with %w
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
