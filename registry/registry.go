// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stacklok/skillmesh-core/logger"
)

// ProtocolVersion is the version of the registry request protocol.
const ProtocolVersion = "1.0.0"

// registryName identifies this implementation in info responses.
const registryName = "skillmesh-registry"

// Registry is the skill metadata index. All state lives behind a single
// goroutine that processes submitted requests one at a time to completion;
// the Registry handle itself is safe for concurrent use.
type Registry struct {
	requests chan *envelope
	stop     chan struct{}
	stopped  chan struct{}
	once     sync.Once

	// now supplies timestamps for mutations. Override in tests for
	// deterministic PublishedAt/UpdatedAt values.
	now func() time.Time
}

// envelope pairs a request with its reply channel.
type envelope struct {
	req   Request
	reply chan outcome
}

type outcome struct {
	resp Response
	err  error
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the time source used for mutation timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// New creates a registry and starts its owning goroutine.
// Call Close to stop it.
func New(opts ...Option) *Registry {
	r := &Registry{
		requests: make(chan *envelope),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	go r.run()
	return r
}

// Close stops the registry. In-flight requests complete; later Submit
// calls fail with ErrClosed. Close is idempotent.
func (r *Registry) Close() {
	r.once.Do(func() {
		close(r.stop)
	})
	<-r.stopped
}

// Submit sends a request to the registry and waits for its outcome.
// Requests are processed strictly in arrival order; each one either
// commits a validated state change or rejects with no side effects.
func (r *Registry) Submit(ctx context.Context, req Request) (Response, error) {
	env := &envelope{req: req, reply: make(chan outcome, 1)}

	select {
	case r.requests <- env:
	case <-r.stop:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Once accepted, the actor always delivers an outcome; the reply
	// channel is buffered so an abandoned wait cannot block the loop.
	select {
	case out := <-env.reply:
		return out.resp, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Register publishes a skill version, creating the record and assigning
// ownership on first registration for the name.
func (r *Registry) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	resp, err := r.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.(*RegisterResponse), nil
}

// Search returns records matching the query, exact name matches first.
func (r *Registry) Search(ctx context.Context, query string) (*SearchResponse, error) {
	resp, err := r.Submit(ctx, &SearchRequest{Query: query})
	if err != nil {
		return nil, err
	}
	return resp.(*SearchResponse), nil
}

// Get returns the latest version metadata for name.
func (r *Registry) Get(ctx context.Context, name string) (*GetResponse, error) {
	resp, err := r.Submit(ctx, &GetRequest{Name: name})
	if err != nil {
		return nil, err
	}
	return resp.(*GetResponse), nil
}

// Info returns the registry's static capability descriptor.
func (r *Registry) Info(ctx context.Context) (*InfoResponse, error) {
	resp, err := r.Submit(ctx, &InfoRequest{})
	if err != nil {
		return nil, err
	}
	return resp.(*InfoResponse), nil
}

// run is the actor loop. It exclusively owns the store; nothing else ever
// reads or writes it.
func (r *Registry) run() {
	defer close(r.stopped)

	st := newStore()
	for {
		select {
		case <-r.stop:
			return
		case env := <-r.requests:
			env.reply <- r.dispatch(st, env.req)
		}
	}
}

func (r *Registry) dispatch(st *store, req Request) outcome {
	switch req := req.(type) {
	case *RegisterRequest:
		resp, err := st.register(req, r.now().UTC())
		if err != nil {
			logger.Debugw("registration rejected", "skill", req.Name, "version", req.Version, "error", err)
			return outcome{err: err}
		}
		logger.Infow("skill registered", "skill", resp.Name, "version", resp.Version, "created", resp.Created)
		return outcome{resp: resp}
	case *SearchRequest:
		return outcome{resp: st.search(req.Query)}
	case *GetRequest:
		resp, err := st.get(req.Name)
		if err != nil {
			return outcome{err: err}
		}
		return outcome{resp: resp}
	case *InfoRequest:
		return outcome{resp: &InfoResponse{Info: Info{
			Name:            registryName,
			ProtocolVersion: ProtocolVersion,
			Operations:      []string{"register", "search", "get", "info"},
		}}}
	default:
		return outcome{err: fmt.Errorf("%w: unknown request type %T", ErrInvalidInput, req)}
	}
}
