// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package graph

// color is the visit state of a node during cycle detection.
type color uint8

const (
	white color = iota // unvisited
	gray               // on the current recursion path
	black              // fully explored, no cycle through it
)

// FindCycles runs a three-color depth-first search over the graph and
// returns every cycle found, each as an ordered path that closes on its
// first element (for example [A B A], or [A A] for a self-edge).
//
// Nodes are visited in insertion order, so the result is deterministic
// for a given construction sequence. An empty result means the graph is
// acyclic and safe to order topologically.
func (g *Graph) FindCycles() [][]string {
	colors := make(map[string]color, len(g.nodes))
	var cycles [][]string
	var path []string

	var visit func(name string)
	visit = func(name string) {
		colors[name] = gray
		path = append(path, name)

		for _, dep := range g.nodes[name].Dependencies {
			switch colors[dep] {
			case gray:
				// Back edge: the cycle is the path segment from dep
				// to the current node, closed back on dep.
				start := 0
				for i, n := range path {
					if n == dep {
						start = i
						break
					}
				}
				cycle := make([]string, 0, len(path)-start+1)
				cycle = append(cycle, path[start:]...)
				cycle = append(cycle, dep)
				cycles = append(cycles, cycle)
			case white:
				visit(dep)
			}
		}

		path = path[:len(path)-1]
		colors[name] = black
	}

	for _, name := range g.order {
		if colors[name] == white {
			visit(name)
		}
	}

	return cycles
}
