// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	valid := []string{
		"fmt",
		"json-tools",
		"my_skill",
		"io.github.example",
		"a1-b2.c3",
	}
	for _, name := range valid {
		t.Run("valid "+name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, ValidateName(name))
		})
	}

	invalid := map[string]string{
		"empty":                "",
		"whitespace only":      "   ",
		"uppercase":            "MySkill",
		"inner space":          "my skill",
		"leading separator":    "-skill",
		"trailing separator":   "skill.",
		"double separator":     "my--skill",
		"null byte":            "skill\x00",
		"over max length":      strings.Repeat("a", MaxLength+1),
		"non-ascii identifier": "skíll",
	}
	for label, name := range invalid {
		t.Run("invalid "+label, func(t *testing.T) {
			t.Parallel()
			require.Error(t, ValidateName(name))
		})
	}
}
