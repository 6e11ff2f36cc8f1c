// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gyrus Contributors

package store

import "errors"

// Sentinel errors for store operations.
// These errors can be checked using errors.Is() for classification.
var (
	// ErrDuplicateID indicates a Save collided with an existing Node id.
	// The stored record is left untouched.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input parameters are invalid or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDatabase indicates the backing medium failed. This is a catch-all
	// for unexpected storage failures; the operation was not retried.
	ErrDatabase = errors.New("database error")
)
