// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stacklok/skillmesh-core/registry"
)

// flakyBackend fails a configurable number of times per name before
// answering, simulating a lossy transport beneath the client.
type flakyBackend struct {
	skills    map[string]*registry.SkillVersionMetadata
	failures  map[string]int
	getCalls  int
	searchErr error
}

func newFlakyBackend() *flakyBackend {
	return &flakyBackend{
		skills:   make(map[string]*registry.SkillVersionMetadata),
		failures: make(map[string]int),
	}
}

func (b *flakyBackend) Get(_ context.Context, name string) (*registry.GetResponse, error) {
	b.getCalls++
	if b.failures[name] > 0 {
		b.failures[name]--
		return nil, errors.New("transport reset")
	}
	meta, ok := b.skills[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", registry.ErrNotFound, name)
	}
	return &registry.GetResponse{Skill: meta}, nil
}

func (b *flakyBackend) Search(_ context.Context, _ string) (*registry.SearchResponse, error) {
	if b.searchErr != nil {
		return nil, b.searchErr
	}
	return &registry.SearchResponse{}, nil
}

func TestGetSkill(t *testing.T) {
	t.Parallel()

	t.Run("returns metadata on first try", func(t *testing.T) {
		t.Parallel()

		b := newFlakyBackend()
		b.skills["planner"] = &registry.SkillVersionMetadata{Name: "planner", Version: "1.2.3"}

		meta, err := New(b).GetSkill(t.Context(), "planner")
		require.NoError(t, err)
		require.Equal(t, "1.2.3", meta.Version)
		require.Equal(t, 1, b.getCalls)
	})

	t.Run("retries one transient failure", func(t *testing.T) {
		t.Parallel()

		b := newFlakyBackend()
		b.skills["planner"] = &registry.SkillVersionMetadata{Name: "planner", Version: "1.2.3"}
		b.failures["planner"] = 1

		meta, err := New(b, WithTimeout(time.Second)).GetSkill(t.Context(), "planner")
		require.NoError(t, err)
		require.Equal(t, "planner", meta.Name)
		require.Equal(t, 2, b.getCalls)
	})

	t.Run("exhausted retry budget surfaces the failure", func(t *testing.T) {
		t.Parallel()

		b := newFlakyBackend()
		b.skills["planner"] = &registry.SkillVersionMetadata{Name: "planner"}
		b.failures["planner"] = 5

		_, err := New(b).GetSkill(t.Context(), "planner")
		require.Error(t, err)
		require.NotErrorIs(t, err, registry.ErrNotFound)
		require.Equal(t, 2, b.getCalls, "budget is two attempts")
	})

	t.Run("not-found is never retried", func(t *testing.T) {
		t.Parallel()

		b := newFlakyBackend()

		_, err := New(b).GetSkill(t.Context(), "ghost")
		require.ErrorIs(t, err, registry.ErrNotFound)
		require.Equal(t, 1, b.getCalls)
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("definitive rejection is not retried", func(t *testing.T) {
		t.Parallel()

		b := newFlakyBackend()
		b.searchErr = fmt.Errorf("%w: bad query", registry.ErrInvalidInput)

		_, err := New(b).Search(t.Context(), "??")
		require.ErrorIs(t, err, registry.ErrInvalidInput)
	})
}

func TestClientAgainstRegistry(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	t.Cleanup(reg.Close)

	_, err := reg.Register(t.Context(), &registry.RegisterRequest{
		Name:           "formatter",
		Version:        "2.0.0",
		Description:    "formats things",
		ContentAddress: "sha256:" + string(make64('a')),
		Requester:      "addr-1",
	})
	require.NoError(t, err)

	c := New(reg)

	meta, err := c.GetSkill(t.Context(), "formatter")
	require.NoError(t, err)
	require.Equal(t, "2.0.0", meta.Version)

	records, err := c.Search(t.Context(), "formatter")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "formatter", records[0].Name)

	_, err = c.GetSkill(t.Context(), "absent")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

// make64 builds a 64-character hex-ish string for content addresses.
func make64(ch byte) []byte {
	out := make([]byte, 64)
	for i := range out {
		out[i] = ch
	}
	return out
}
