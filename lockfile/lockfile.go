// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package lockfile captures a resolved install plan as a reproducible
// snapshot. Each entry pins the name, version, and content address chosen
// at resolution time, so a later reinstall does not move with the
// registry's latest pointers. Persisting the bytes to disk is the
// caller's concern; this package only defines the format.
package lockfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/skillmesh-core/resolver"
)

// FormatVersion is the current lockfile schema version.
const FormatVersion = 1

// ErrUnsupportedVersion indicates the lockfile was written by an
// incompatible format version.
var ErrUnsupportedVersion = errors.New("unsupported lockfile version")

// Entry pins one skill of the plan.
type Entry struct {
	// Name of the skill.
	Name string `yaml:"name"`
	// Version resolved for this installation.
	Version string `yaml:"version"`
	// ContentAddress of the bundle in the permanent store.
	ContentAddress string `yaml:"contentAddress"`
}

// Lockfile is the full snapshot of one resolution.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int `yaml:"version"`
	// Root is the skill name the plan was resolved for.
	Root string `yaml:"root"`
	// Skills lists every planned skill in install order.
	Skills []Entry `yaml:"skills"`
}

// FromPlan builds a lockfile from a resolved install plan. Entry order is
// the plan's install order.
func FromPlan(root string, plan resolver.InstallPlan) *Lockfile {
	entries := make([]Entry, len(plan))
	for i, s := range plan {
		entries[i] = Entry{
			Name:           s.Name,
			Version:        s.Version,
			ContentAddress: s.ContentAddress,
		}
	}
	return &Lockfile{
		Version: FormatVersion,
		Root:    root,
		Skills:  entries,
	}
}

// Plan converts the lockfile back into an install plan.
func (l *Lockfile) Plan() resolver.InstallPlan {
	plan := make(resolver.InstallPlan, len(l.Skills))
	for i, e := range l.Skills {
		plan[i] = resolver.PlannedSkill{
			Name:           e.Name,
			Version:        e.Version,
			ContentAddress: e.ContentAddress,
		}
	}
	return plan
}

// Write encodes the lockfile as YAML.
func (l *Lockfile) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encoding lockfile: %w", err)
	}
	return enc.Close()
}

// Read decodes a YAML lockfile and rejects unknown format versions.
func Read(r io.Reader) (*Lockfile, error) {
	var l Lockfile
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("decoding lockfile: %w", err)
	}
	if l.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, l.Version)
	}
	return &l, nil
}
