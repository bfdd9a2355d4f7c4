// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package bundles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2/content/oci"
	"oras.land/oras-go/v2/errdef"
)

// MediaTypeBundle is the media type recorded for skill bundle blobs.
const MediaTypeBundle = "application/vnd.skillmesh.bundle.v1.tar+gzip"

// MaxBundleSize is the maximum size of a bundle blob (100MB).
const MaxBundleSize int64 = 100 * 1024 * 1024

// Store is a local content-addressed bundle store backed by an OCI Image
// Layout (blobs/, oci-layout, index.json).
type Store struct {
	root  string
	inner *oci.Store
}

// NewStore creates a bundle store at the given root directory,
// initializing the OCI layout if needed.
func NewStore(root string) (*Store, error) {
	inner, err := oci.New(root)
	if err != nil {
		return nil, fmt.Errorf("creating bundle store at %s: %w", root, err)
	}
	return &Store{root: root, inner: inner}, nil
}

// StoreRoot returns the bundle store root within the given data home
// directory. This is the injectable, testable form; for the standard XDG
// location use DefaultStoreRoot.
func StoreRoot(dataHome string) string {
	return filepath.Join(dataHome, "skillmesh", "bundles")
}

// DefaultStoreRoot returns the default store root using XDG base
// directory conventions.
func DefaultStoreRoot() string {
	return StoreRoot(xdg.DataHome)
}

// Put stores bundle bytes and returns their content address. Storing
// bytes that already exist is a no-op returning the same address.
func (s *Store) Put(ctx context.Context, content []byte) (digest.Digest, error) {
	if int64(len(content)) > MaxBundleSize {
		return "", fmt.Errorf("bundle exceeds maximum size of %d bytes", MaxBundleSize)
	}

	d := digest.FromBytes(content)
	desc := ocispec.Descriptor{
		MediaType: MediaTypeBundle,
		Digest:    d,
		Size:      int64(len(content)),
	}

	if err := s.inner.Push(ctx, desc, bytes.NewReader(content)); err != nil {
		if errors.Is(err, errdef.ErrAlreadyExists) {
			return d, nil
		}
		return "", fmt.Errorf("writing bundle: %w", err)
	}
	return d, nil
}

// Get retrieves bundle bytes by content address.
func (s *Store) Get(ctx context.Context, d digest.Digest) ([]byte, error) {
	// oci.Store's Fetch only uses the Digest field to locate blobs in
	// blobs/<algo>/<hex>.
	rc, err := s.inner.Fetch(ctx, ocispec.Descriptor{Digest: d})
	if err != nil {
		return nil, fmt.Errorf("bundle not found: %s: %w", d, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading bundle %s: %w", d, err)
	}
	return data, nil
}

// Exists reports whether a bundle with the given address is stored.
func (s *Store) Exists(ctx context.Context, d digest.Digest) (bool, error) {
	ok, err := s.inner.Exists(ctx, ocispec.Descriptor{Digest: d})
	if err != nil {
		return false, fmt.Errorf("checking bundle %s: %w", d, err)
	}
	return ok, nil
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}
