// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package registry implements the authoritative skill metadata index.
//
// The index is a single mutable table of skill records, exclusively owned
// by one goroutine. Callers submit typed requests (register, search, get,
// info) which are processed strictly one at a time: each request is fully
// validated before any field is mutated, and on validation failure the
// state is left untouched and a structured error is returned. There is no
// internal locking because there is no internal parallelism.
//
// Ownership policy: the first identity to register a name owns it forever;
// subsequent versions must come from the owner and must strictly increase
// the record's latest semantic version.
package registry
