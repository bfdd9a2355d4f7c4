// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package graph

import "errors"

// ErrUnresolvable indicates the orderer could not place every node, which
// means a cycle survived into ordering. Callers are expected to run
// FindCycles first and abort on any result, so hitting this error is an
// internal invariant violation rather than a user-facing condition.
var ErrUnresolvable = errors.New("graph contains a residual cycle")

// TopologicalOrder returns every node in dependency-first order: for each
// edge u -> v, v appears before u. It implements Kahn's algorithm keyed on
// the count of unplaced dependencies per node.
//
// Nodes become eligible in insertion order, which makes the output
// deterministic for a given construction sequence.
func (g *Graph) TopologicalOrder() ([]string, error) {
	remaining := make(map[string]int, len(g.nodes))
	for name, node := range g.nodes {
		remaining[name] = len(node.Dependencies)
	}

	queue := make([]string, 0, len(g.nodes))
	for _, name := range g.order {
		if remaining[name] == 0 {
			queue = append(queue, name)
		}
	}

	out := make([]string, 0, len(g.nodes))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		out = append(out, name)

		for _, dependent := range g.nodes[name].Dependents {
			remaining[dependent]--
			if remaining[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(out) != len(g.nodes) {
		return nil, ErrUnresolvable
	}
	return out, nil
}
