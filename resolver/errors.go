// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDepthLimitExceeded indicates the dependency traversal went deeper
// than MaxDepth levels from the root. This is a hard failure, not a
// truncation; no plan is produced.
var ErrDepthLimitExceeded = errors.New("dependency depth limit exceeded")

// MissingDependencyError indicates a skill name did not resolve, either
// because it is absent from the registry or because the lookup kept
// failing after the client's retry budget was spent. Unwrap distinguishes
// the two: a truly absent skill wraps registry.ErrNotFound.
type MissingDependencyError struct {
	// Name is the skill that did not resolve.
	Name string
	// Err is the underlying lookup failure.
	Err error
}

// Error implements the error interface.
func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("dependency %q did not resolve: %v", e.Name, e.Err)
}

// Unwrap returns the underlying lookup failure.
func (e *MissingDependencyError) Unwrap() error {
	return e.Err
}

// CircularDependencyError indicates the accumulated dependency graph
// contains a cycle. The caller must edit the dependency declarations;
// retrying cannot succeed.
type CircularDependencyError struct {
	// Cycle is the cyclic path, closed on its first element,
	// for example [A B A].
	Cycle []string
}

// Error implements the error interface.
func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency: %s", strings.Join(e.Cycle, " -> "))
}
