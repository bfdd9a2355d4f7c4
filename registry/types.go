// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import "time"

// Identity is the cryptographic address of a requester. Verification of
// the address against a signature happens at the transport boundary; by
// the time a request reaches the registry the identity is trusted.
type Identity string

// SkillVersionMetadata describes one published (name, version) pair.
type SkillVersionMetadata struct {
	// Name is the skill name this version belongs to.
	Name string `json:"name"`
	// Version is the semantic version of this entry.
	Version string `json:"version"`
	// Description is a human-readable summary of the skill.
	Description string `json:"description"`
	// Author is a display string, not an identity.
	Author string `json:"author,omitempty"`
	// Owner is the record owner's address, repeated here for convenience.
	Owner Identity `json:"owner"`
	// Tags categorize the skill for search.
	Tags []string `json:"tags,omitempty"`
	// Dependencies lists bare skill names this version depends on.
	Dependencies []string `json:"dependencies,omitempty"`
	// ContentAddress points at the bundle bytes in the permanent store,
	// in OCI digest form (for example "sha256:...").
	ContentAddress string `json:"contentAddress"`
	// Changelog describes what changed in this version.
	Changelog string `json:"changelog,omitempty"`
	// Downloads counts how many times this version was fetched.
	Downloads int64 `json:"downloads"`
	// PublishedAt is when this version was registered.
	PublishedAt time.Time `json:"publishedAt"`
	// UpdatedAt is when the parent record last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// SkillRecord is the per-name registry entry holding every published
// version and the current owner.
type SkillRecord struct {
	// Name uniquely identifies the record.
	Name string `json:"name"`
	// Owner is set by the first successful registration and never changes.
	Owner Identity `json:"owner"`
	// Latest is the highest semantic version present in Versions.
	Latest string `json:"latest"`
	// Versions maps version string to its metadata.
	Versions map[string]*SkillVersionMetadata `json:"versions"`
	// CreatedAt is when the record was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the record last accepted a mutation.
	UpdatedAt time.Time `json:"updatedAt"`

	// seq is the record's insertion sequence number, used to break ties
	// when ranking search results.
	seq int
}

// LatestVersion returns the metadata for the record's latest version, or
// nil if the record holds no versions.
func (r *SkillRecord) LatestVersion() *SkillVersionMetadata {
	return r.Versions[r.Latest]
}

// clone returns a deep copy so actor-owned state never escapes by reference.
func (r *SkillRecord) clone() *SkillRecord {
	out := *r
	out.Versions = make(map[string]*SkillVersionMetadata, len(r.Versions))
	for v, meta := range r.Versions {
		out.Versions[v] = meta.clone()
	}
	return &out
}

func (m *SkillVersionMetadata) clone() *SkillVersionMetadata {
	out := *m
	out.Tags = append([]string(nil), m.Tags...)
	out.Dependencies = append([]string(nil), m.Dependencies...)
	return &out
}
