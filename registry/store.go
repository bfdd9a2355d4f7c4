// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
)

// store is the registry's single mutable table. It is only ever touched by
// the actor goroutine, so it carries no locking of its own.
type store struct {
	records map[string]*SkillRecord
	nextSeq int
}

func newStore() *store {
	return &store{records: make(map[string]*SkillRecord)}
}

// register applies a validated register request. Every check runs before
// the first write, so a rejected request leaves the table unchanged.
func (s *store) register(req *RegisterRequest, now time.Time) (*RegisterResponse, error) {
	version, err := validateRegister(req)
	if err != nil {
		return nil, err
	}

	record, exists := s.records[req.Name]
	if exists {
		if req.Requester != record.Owner {
			return nil, fmt.Errorf("%w: %q is owned by %q", ErrOwnershipViolation, req.Name, record.Owner)
		}
		latest, err := semver.StrictNewVersion(record.Latest)
		if err != nil {
			// Latest was validated on the way in, so this cannot happen
			// short of memory corruption.
			return nil, fmt.Errorf("%w: stored latest %q unparseable: %v", ErrInvalidInput, record.Latest, err)
		}
		if !version.GreaterThan(latest) {
			return nil, &VersionNotIncreasingError{
				Name:     req.Name,
				Proposed: req.Version,
				Latest:   record.Latest,
			}
		}
	}

	// Validation complete; mutate.
	if !exists {
		record = &SkillRecord{
			Name:      req.Name,
			Owner:     req.Requester,
			Versions:  make(map[string]*SkillVersionMetadata),
			CreatedAt: now,
			seq:       s.nextSeq,
		}
		s.nextSeq++
		s.records[req.Name] = record
	}

	record.Versions[req.Version] = &SkillVersionMetadata{
		Name:           req.Name,
		Version:        req.Version,
		Description:    req.Description,
		Author:         req.Author,
		Owner:          record.Owner,
		Tags:           append([]string(nil), req.Tags...),
		Dependencies:   append([]string(nil), req.Dependencies...),
		ContentAddress: req.ContentAddress,
		Changelog:      req.Changelog,
		PublishedAt:    now,
		UpdatedAt:      now,
	}
	record.Latest = req.Version
	record.UpdatedAt = now

	return &RegisterResponse{
		Name:    req.Name,
		Version: req.Version,
		Latest:  record.Latest,
		Created: !exists,
	}, nil
}

// get returns the latest version metadata for name and bumps its download
// counter. The returned value is a copy.
func (s *store) get(name string) (*GetResponse, error) {
	record, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	latest := record.LatestVersion()
	if latest == nil {
		return nil, fmt.Errorf("%w: %q has no versions", ErrNotFound, name)
	}
	latest.Downloads++
	return &GetResponse{Skill: latest.clone()}, nil
}
