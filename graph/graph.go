// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package graph

// Node is a single skill in the dependency graph.
type Node struct {
	// Name uniquely identifies the skill within the graph.
	Name string

	// Dependencies are the names this skill depends on (outgoing edges).
	Dependencies []string

	// Dependents are the names that depend on this skill (reverse edges).
	Dependents []string
}

// Graph is a directed dependency graph keyed by skill name.
//
// The zero value is not usable; construct with New. A Graph is owned by a
// single resolution and is not safe for concurrent use.
type Graph struct {
	nodes map[string]*Node
	order []string // insertion order, drives deterministic traversal
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode adds a node for name if it is not already present.
// Re-adding an existing name is a no-op, so diamond dependencies
// collapse to a single node.
func (g *Graph) AddNode(name string) {
	if _, ok := g.nodes[name]; ok {
		return
	}
	g.nodes[name] = &Node{Name: name}
	g.order = append(g.order, name)
}

// AddEdge records that from depends on to, creating either node as needed.
// Duplicate edges are ignored.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)

	src := g.nodes[from]
	for _, dep := range src.Dependencies {
		if dep == to {
			return
		}
	}
	src.Dependencies = append(src.Dependencies, to)
	g.nodes[to].Dependents = append(g.nodes[to].Dependents, from)
}

// Has reports whether name is a node in the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Node returns the node for name, or nil if absent.
func (g *Graph) Node(name string) *Node {
	return g.nodes[name]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Names returns all node names in the order they were first added.
// The returned slice is a copy.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}
