// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry failures. Every failure leaves the registry
// state byte-for-byte unchanged.
var (
	// ErrNotFound indicates the requested skill name is not registered.
	ErrNotFound = errors.New("skill not found")

	// ErrOwnershipViolation indicates the requester does not own the record.
	ErrOwnershipViolation = errors.New("requester is not the record owner")

	// ErrVersionNotIncreasing indicates the proposed version does not
	// strictly exceed the record's latest version.
	ErrVersionNotIncreasing = errors.New("version does not increase latest")

	// ErrInvalidInput indicates a malformed registration field, rejected
	// before any mutation was attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrClosed indicates the registry has been shut down.
	ErrClosed = errors.New("registry is closed")
)

// VersionNotIncreasingError reports a rejected version together with the
// latest version it would have to exceed.
type VersionNotIncreasingError struct {
	// Name of the record.
	Name string
	// Proposed is the version that was rejected.
	Proposed string
	// Latest is the record's current latest version; any accepted version
	// must be strictly greater.
	Latest string
}

// Error implements the error interface.
func (e *VersionNotIncreasingError) Error() string {
	return fmt.Sprintf("version %q for %q does not increase latest: must be greater than %q",
		e.Proposed, e.Name, e.Latest)
}

// Is makes the error match ErrVersionNotIncreasing with errors.Is.
func (*VersionNotIncreasingError) Is(target error) bool {
	return target == ErrVersionNotIncreasing
}
