// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

// Request is the closed set of operations the registry accepts. Each
// request kind is parsed into its typed form at the boundary, before any
// validation logic runs.
type Request interface {
	isRequest()
}

// RegisterRequest publishes a new version of a skill, creating the record
// on first registration.
type RegisterRequest struct {
	// Name of the skill being registered.
	Name string `json:"name"`
	// Version must be a valid semantic version and, for an existing
	// record, strictly greater than the record's latest.
	Version string `json:"version"`
	// Description of the skill.
	Description string `json:"description"`
	// Author display string.
	Author string `json:"author,omitempty"`
	// Tags for search categorization.
	Tags []string `json:"tags,omitempty"`
	// ContentAddress of the bundle in OCI digest form.
	ContentAddress string `json:"contentAddress"`
	// Dependencies are bare skill names, no version pins.
	Dependencies []string `json:"dependencies,omitempty"`
	// Changelog for this version.
	Changelog string `json:"changelog,omitempty"`
	// Requester is the verified identity submitting the request.
	Requester Identity `json:"requester"`
}

// SearchRequest looks up records by case-insensitive substring match
// against name, description, and tags.
type SearchRequest struct {
	Query string `json:"query"`
}

// GetRequest fetches the latest version metadata for a name.
type GetRequest struct {
	Name string `json:"name"`
}

// InfoRequest asks for the registry's static capability descriptor.
type InfoRequest struct{}

func (*RegisterRequest) isRequest() {}
func (*SearchRequest) isRequest()   {}
func (*GetRequest) isRequest()      {}
func (*InfoRequest) isRequest()     {}

// Response is the closed set of success payloads, one per request kind.
type Response interface {
	isResponse()
}

// RegisterResponse confirms an accepted registration.
type RegisterResponse struct {
	// Name of the registered skill.
	Name string `json:"name"`
	// Version that was stored.
	Version string `json:"version"`
	// Latest is the record's latest version after the mutation.
	Latest string `json:"latest"`
	// Created is true when this registration created the record.
	Created bool `json:"created"`
}

// SearchResponse carries ranked matches for a query.
type SearchResponse struct {
	Records []*SkillRecord `json:"records"`
}

// GetResponse carries the latest metadata for a requested name.
type GetResponse struct {
	Skill *SkillVersionMetadata `json:"skill"`
}

// InfoResponse carries the protocol capability descriptor.
type InfoResponse struct {
	Info Info `json:"info"`
}

func (*RegisterResponse) isResponse() {}
func (*SearchResponse) isResponse()   {}
func (*GetResponse) isResponse()      {}
func (*InfoResponse) isResponse()     {}

// Info is the static descriptor returned by the info operation.
type Info struct {
	// Name identifies the registry implementation.
	Name string `json:"name"`
	// ProtocolVersion is the version of the request protocol itself.
	ProtocolVersion string `json:"protocolVersion"`
	// Operations lists the supported operation kinds.
	Operations []string `json:"operations"`
}
