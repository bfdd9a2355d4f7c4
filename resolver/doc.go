// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package resolver turns a root skill name into a dependency-first install
// plan by querying a metadata Provider, building a dependency graph, and
// ordering it topologically after proving it acyclic.
//
// Resolution is all-or-nothing: a missing dependency, a cycle, or an
// exceeded depth limit aborts the whole call and discards every piece of
// partial graph state. Each resolution owns its graph exclusively; nothing
// is shared across concurrent resolutions.
package resolver
