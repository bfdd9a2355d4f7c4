// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package client implements the resolver's metadata Provider on top of the
// registry's request protocol.
//
// Each lookup runs under a bounded timeout and a small fixed retry budget.
// Transient failures are retried; a definitive not-found is never retried,
// so "the skill is truly absent" stays distinguishable from "the request
// kept failing" through the wrapped error chain.
package client
