// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/opencontainers/go-digest"
	"github.com/xeipuuv/gojsonschema"

	"github.com/stacklok/skillmesh-core/validation/skillname"
)

//go:embed data/register-request.schema.json
var embeddedSchemaFS embed.FS

// validateRegister checks a register request in full before any mutation:
// structural validation against the embedded JSON schema first, then the
// field-level checks the schema cannot express. It returns the parsed
// semantic version on success.
func validateRegister(req *RegisterRequest) (*semver.Version, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil register request", ErrInvalidInput)
	}

	if err := skillname.ValidateName(req.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, dep := range req.Dependencies {
		if err := skillname.ValidateName(dep); err != nil {
			return nil, fmt.Errorf("%w: dependency: %v", ErrInvalidInput, err)
		}
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: serializing register request: %v", ErrInvalidInput, err)
	}
	if err := validateAgainstSchema(data, "data/register-request.schema.json"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	version, err := semver.StrictNewVersion(req.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing version %q: %v", ErrInvalidInput, req.Version, err)
	}

	if _, err := digest.Parse(req.ContentAddress); err != nil {
		return nil, fmt.Errorf("%w: parsing content address %q: %v", ErrInvalidInput, req.ContentAddress, err)
	}

	// Cyclic dependency declarations, including a direct self-edge, are
	// legal to register; the resolver is the component that rejects them.
	for _, tag := range req.Tags {
		if strings.TrimSpace(tag) == "" {
			return nil, fmt.Errorf("%w: blank tag", ErrInvalidInput)
		}
	}

	return version, nil
}

// validateAgainstSchema validates data against a named embedded schema file.
func validateAgainstSchema(data []byte, schemaFile string) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("reading embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}
