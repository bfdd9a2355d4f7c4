// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopologicalOrder(t *testing.T) {
	t.Parallel()

	t.Run("single node", func(t *testing.T) {
		t.Parallel()

		g := New()
		g.AddNode("a")

		order, err := g.TopologicalOrder()
		require.NoError(t, err)
		require.Equal(t, []string{"a"}, order)
	})

	t.Run("linear chain installs bottom-up", func(t *testing.T) {
		t.Parallel()

		g := New()
		g.AddEdge("a", "b")
		g.AddEdge("b", "c")
		g.AddEdge("c", "d")

		order, err := g.TopologicalOrder()
		require.NoError(t, err)
		require.Equal(t, []string{"d", "c", "b", "a"}, order)
	})

	t.Run("diamond places shared dependency once and first", func(t *testing.T) {
		t.Parallel()

		g := New()
		g.AddEdge("a", "b")
		g.AddEdge("a", "c")
		g.AddEdge("b", "d")
		g.AddEdge("c", "d")

		order, err := g.TopologicalOrder()
		require.NoError(t, err)
		require.Equal(t, []string{"d", "b", "c", "a"}, order)
	})

	t.Run("independent nodes keep insertion order", func(t *testing.T) {
		t.Parallel()

		g := New()
		g.AddNode("c")
		g.AddNode("a")
		g.AddNode("b")

		order, err := g.TopologicalOrder()
		require.NoError(t, err)
		require.Equal(t, []string{"c", "a", "b"}, order)
	})

	t.Run("deterministic across repeated runs", func(t *testing.T) {
		t.Parallel()

		build := func() *Graph {
			g := New()
			g.AddEdge("app", "lib")
			g.AddEdge("app", "util")
			g.AddEdge("lib", "base")
			g.AddEdge("util", "base")
			return g
		}

		first, err := build().TopologicalOrder()
		require.NoError(t, err)
		for range 20 {
			next, err := build().TopologicalOrder()
			require.NoError(t, err)
			require.Equal(t, first, next)
		}
	})

	t.Run("residual cycle is an internal error", func(t *testing.T) {
		t.Parallel()

		g := New()
		g.AddEdge("a", "b")
		g.AddEdge("b", "a")

		_, err := g.TopologicalOrder()
		require.ErrorIs(t, err, ErrUnresolvable)
	})
}
