// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/stacklok/skillmesh-core/registry"
	"github.com/stacklok/skillmesh-core/resolver"
)

// defaultTimeout bounds a single request to the registry.
const defaultTimeout = 5 * time.Second

// defaultMaxTries is the per-lookup retry budget, counting the first attempt.
const defaultMaxTries = 2

// Backend is the slice of the registry protocol the client consumes.
// *registry.Registry satisfies it directly; a remote transport would sit
// behind the same interface.
type Backend interface {
	Get(ctx context.Context, name string) (*registry.GetResponse, error)
	Search(ctx context.Context, query string) (*registry.SearchResponse, error)
}

// Compile-time interface checks.
var (
	_ Backend           = (*registry.Registry)(nil)
	_ resolver.Provider = (*Client)(nil)
)

// Client is a metadata provider with per-request timeout and retries.
type Client struct {
	backend  Backend
	timeout  time.Duration
	maxTries uint
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxTries sets the per-lookup attempt budget, counting the first attempt.
func WithMaxTries(n uint) ClientOption {
	return func(c *Client) {
		if n >= 1 {
			c.maxTries = n
		}
	}
}

// New creates a client over the given backend.
func New(backend Backend, opts ...ClientOption) *Client {
	c := &Client{
		backend:  backend,
		timeout:  defaultTimeout,
		maxTries: defaultMaxTries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSkill returns the latest metadata for name, retrying transient
// failures within the budget. A definitive not-found fails immediately
// and wraps registry.ErrNotFound.
func (c *Client) GetSkill(ctx context.Context, name string) (*registry.SkillVersionMetadata, error) {
	return retry(ctx, c, func(opCtx context.Context) (*registry.SkillVersionMetadata, error) {
		resp, err := c.backend.Get(opCtx, name)
		if err != nil {
			return nil, err
		}
		return resp.Skill, nil
	})
}

// Search returns ranked records matching the query, retrying transient
// failures within the budget.
func (c *Client) Search(ctx context.Context, query string) ([]*registry.SkillRecord, error) {
	return retry(ctx, c, func(opCtx context.Context) ([]*registry.SkillRecord, error) {
		resp, err := c.backend.Search(opCtx, query)
		if err != nil {
			return nil, err
		}
		return resp.Records, nil
	})
}

// retry runs one backend call under the client's timeout and retry budget.
// Failures that can never succeed on retry are marked permanent so backoff
// stops immediately.
func retry[T any](ctx context.Context, c *Client, call func(context.Context) (T, error)) (T, error) {
	op := func() (T, error) {
		opCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		out, err := call(opCtx)
		if err != nil && !retryable(err) {
			return out, backoff.Permanent(err)
		}
		return out, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(c.maxTries),
	)
}

// retryable reports whether a failure might succeed on another attempt.
// Registry rejections are definitive; only transport-level failures
// (timeouts, closed connections wrapped by a remote backend) qualify.
func retryable(err error) bool {
	switch {
	case errors.Is(err, registry.ErrNotFound),
		errors.Is(err, registry.ErrInvalidInput),
		errors.Is(err, registry.ErrClosed):
		return false
	}
	return true
}
