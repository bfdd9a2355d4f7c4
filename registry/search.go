// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"sort"
	"strings"
)

// search returns records matching the query with a case-insensitive
// substring match against name, description, and tags. Exact name matches
// rank first, then partial matches, ties broken by insertion order.
// Returned records are copies.
func (s *store) search(query string) *SearchResponse {
	q := strings.ToLower(query)

	var exact, partial []*SkillRecord
	for _, record := range s.records {
		switch {
		case strings.ToLower(record.Name) == q:
			exact = append(exact, record)
		case matchesPartial(record, q):
			partial = append(partial, record)
		}
	}

	byInsertion := func(records []*SkillRecord) {
		sort.Slice(records, func(i, j int) bool {
			return records[i].seq < records[j].seq
		})
	}
	byInsertion(exact)
	byInsertion(partial)

	out := make([]*SkillRecord, 0, len(exact)+len(partial))
	for _, record := range exact {
		out = append(out, record.clone())
	}
	for _, record := range partial {
		out = append(out, record.clone())
	}
	return &SearchResponse{Records: out}
}

func matchesPartial(record *SkillRecord, q string) bool {
	if strings.Contains(strings.ToLower(record.Name), q) {
		return true
	}
	latest := record.LatestVersion()
	if latest == nil {
		return false
	}
	if strings.Contains(strings.ToLower(latest.Description), q) {
		return true
	}
	for _, tag := range latest.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
