// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/stacklok/skillmesh-core/graph"
	"github.com/stacklok/skillmesh-core/logger"
	"github.com/stacklok/skillmesh-core/registry"
)

// MaxDepth is the maximum traversal depth from the requested root,
// counting the root itself as level one.
const MaxDepth = 10

// defaultFetchLimit bounds how many sibling metadata lookups run
// concurrently at one traversal level.
const defaultFetchLimit = 5

// PlannedSkill is one entry of an install plan. The version and content
// address are pinned at resolution time, so reinstalling from a persisted
// plan stays reproducible even as the registry's latest pointers move.
type PlannedSkill struct {
	// Name of the skill to install.
	Name string
	// Version resolved for this installation.
	Version string
	// ContentAddress of the bundle bytes in the permanent store.
	ContentAddress string
}

// InstallPlan is a dependency-first ordered sequence: every skill appears
// after all of its dependencies, and each skill appears exactly once.
type InstallPlan []PlannedSkill

// Names returns the plan's skill names in install order.
func (p InstallPlan) Names() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.Name
	}
	return out
}

// Resolver builds install plans from a metadata Provider.
type Resolver struct {
	provider   Provider
	fetchLimit int
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFetchLimit sets the concurrency bound for sibling metadata lookups.
// Values below one are ignored.
func WithFetchLimit(n int) ResolverOption {
	return func(r *Resolver) {
		if n >= 1 {
			r.fetchLimit = n
		}
	}
}

// New creates a resolver backed by the given provider.
func New(provider Provider, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		provider:   provider,
		fetchLimit: defaultFetchLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve produces the install plan for root and its transitive
// dependencies. It traverses level by level from the root, fetching
// sibling metadata concurrently, then rejects cyclic graphs and orders
// the rest dependency-first.
//
// Any failure aborts the whole resolution; no partial plan is returned.
func (r *Resolver) Resolve(ctx context.Context, root string) (InstallPlan, error) {
	g := graph.New()
	g.AddNode(root)

	resolved := make(map[string]*registry.SkillVersionMetadata)
	enqueued := map[string]bool{root: true}
	frontier := []string{root}

	for level := 1; len(frontier) > 0; level++ {
		if level > MaxDepth {
			return nil, fmt.Errorf("%w: %d levels from %q", ErrDepthLimitExceeded, MaxDepth, root)
		}

		fetched, err := r.fetchLevel(ctx, frontier)
		if err != nil {
			return nil, err
		}

		// Frontier order drives edge insertion, which keeps the graph,
		// and therefore the plan, deterministic.
		var next []string
		for _, name := range frontier {
			meta := fetched[name]
			resolved[name] = meta
			for _, dep := range meta.Dependencies {
				g.AddEdge(name, dep)
				if !enqueued[dep] {
					enqueued[dep] = true
					next = append(next, dep)
				}
			}
		}
		frontier = next
	}

	if cycles := g.FindCycles(); len(cycles) > 0 {
		return nil, &CircularDependencyError{Cycle: cycles[0]}
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		// The cycle check above makes this unreachable.
		return nil, fmt.Errorf("ordering dependency graph: %w", err)
	}

	plan := make(InstallPlan, 0, len(order))
	for _, name := range order {
		meta := resolved[name]
		plan = append(plan, PlannedSkill{
			Name:           name,
			Version:        meta.Version,
			ContentAddress: meta.ContentAddress,
		})
	}

	logger.Debugw("resolution complete", "root", root, "skills", len(plan))
	return plan, nil
}

// fetchLevel looks up every name of one traversal level, fanning out up to
// fetchLimit concurrent provider calls. Results are written into a shared
// map under a mutex; the graph itself is only touched by the caller.
func (r *Resolver) fetchLevel(ctx context.Context, names []string) (map[string]*registry.SkillVersionMetadata, error) {
	fetched := make(map[string]*registry.SkillVersionMetadata, len(names))
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.fetchLimit)

	for _, name := range names {
		eg.Go(func() error {
			meta, err := r.provider.GetSkill(ctx, name)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return &MissingDependencyError{Name: name, Err: err}
			}
			mu.Lock()
			fetched[name] = meta
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return fetched, nil
}
