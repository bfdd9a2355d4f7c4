// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package bundles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "store")

	store, err := NewStore(storePath)
	require.NoError(t, err)
	assert.Equal(t, storePath, store.Root())

	// Check OCI Image Layout structure was created
	for _, name := range []string{"blobs", "oci-layout", "index.json"} {
		_, err = os.Stat(filepath.Join(storePath, name))
		assert.NoError(t, err, "%s should exist", name)
	}
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	content := []byte("bundle bytes")

	d, err := store.Put(t.Context(), content)
	require.NoError(t, err)
	assert.Equal(t, digest.FromBytes(content), d)

	retrieved, err := store.Get(t.Context(), d)
	require.NoError(t, err)
	assert.Equal(t, content, retrieved)
}

func TestStore_Put_Idempotent(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	content := []byte("bundle bytes")

	first, err := store.Put(t.Context(), content)
	require.NoError(t, err)

	second, err := store.Put(t.Context(), content)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_Get_Missing(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(t.Context(), digest.FromBytes([]byte("never stored")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bundle not found")
}

func TestStore_Exists(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	d, err := store.Put(t.Context(), []byte("bundle bytes"))
	require.NoError(t, err)

	ok, err := store.Exists(t.Context(), d)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(t.Context(), digest.FromBytes([]byte("other")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/data", "skillmesh", "bundles"), StoreRoot("/data"))
	assert.NotEmpty(t, DefaultStoreRoot())
}
