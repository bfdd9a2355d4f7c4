// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package bundles provides the content-addressed local store for skill
// bundle bytes, backed by an OCI Image Layout on disk.
//
// The registry core only ever handles content addresses; this package is
// the reference implementation of the permanent storage collaborator those
// addresses point into. Content is immutable: a bundle is stored and
// fetched by digest, and storing identical bytes twice is a no-op.
package bundles
