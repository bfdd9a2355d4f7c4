// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillname

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxLength is the maximum length of a skill name in bytes.
const MaxLength = 128

var validNameRegex = regexp.MustCompile(`^[a-z0-9]+(?:[._-][a-z0-9]+)*$`)

// ValidateName validates that a skill name is a well-formed identifier:
// lowercase alphanumeric runs separated by single dots, underscores, or
// dashes, with no whitespace and no leading or trailing separator.
func ValidateName(name string) error {
	if name == "" || strings.TrimSpace(name) == "" {
		return fmt.Errorf("skill name cannot be empty or consist only of whitespace")
	}

	if len(name) > MaxLength {
		return fmt.Errorf("skill name exceeds maximum length of %d bytes", MaxLength)
	}

	// Check for null bytes explicitly
	if strings.Contains(name, "\x00") {
		return fmt.Errorf("skill name cannot contain null bytes")
	}

	// Enforce lowercase-only skill names
	if name != strings.ToLower(name) {
		return fmt.Errorf("skill name must be lowercase: %q", name)
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("skill name can only contain lowercase alphanumeric runs separated by '.', '_', or '-': %q", name)
	}

	return nil
}
