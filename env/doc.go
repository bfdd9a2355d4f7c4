// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

# Testing

The Reader interface allows substituting a fake in tests to avoid relying
on real environment variables. MapReader serves that purpose:

	result := myFunc(env.MapReader{"MY_VAR": "test-value"})

# Design

Production code accepts an env.Reader, while tests substitute MapReader.
*/
package env
