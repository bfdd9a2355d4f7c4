// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"

	"github.com/stacklok/skillmesh-core/registry"
)

// Provider supplies skill metadata to the resolver. The canonical
// implementation is the client package, which speaks the registry's
// request protocol with a timeout and retry budget; tests substitute
// in-memory fakes.
type Provider interface {
	// GetSkill returns the latest version metadata for name. A name that
	// is not registered fails with an error matching registry.ErrNotFound.
	GetSkill(ctx context.Context, name string) (*registry.SkillVersionMetadata, error)

	// Search returns records matching the query, ranked by the registry.
	Search(ctx context.Context, query string) ([]*registry.SkillRecord, error)
}
