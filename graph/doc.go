// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package graph provides the dependency graph used during skill resolution,
// along with cycle detection and topological ordering.
//
// A Graph is built once per resolution and discarded afterwards. Nodes are
// skill names; a directed edge u -> v means "u depends on v". The package
// guarantees deterministic output: traversal and ordering follow the order
// in which nodes were first added to the graph.
package graph
