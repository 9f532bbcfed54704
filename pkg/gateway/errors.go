/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigurationError is returned when the options supplied to a gateway are
// missing or inconsistent.
type ConfigurationError struct {
	msg string
}

func newConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

// NotFoundError is returned when an identity label is not present in the wallet
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return "Identity not found in wallet: " + e.Label
}

// UnsupportedIdentityTypeError is returned when no identity provider is
// registered for an identity type.
type UnsupportedIdentityTypeError struct {
	Type string
}

func (e *UnsupportedIdentityTypeError) Error() string {
	return "Unsupported identity type: " + e.Type
}

// IsConfigurationError returns true if the cause of err is a ConfigurationError
func IsConfigurationError(err error) bool {
	_, ok := errors.Cause(err).(*ConfigurationError)
	return ok
}

// IsNotFound returns true if the cause of err is a NotFoundError
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// IsUnsupportedIdentityType returns true if the cause of err is an
// UnsupportedIdentityTypeError
func IsUnsupportedIdentityType(err error) bool {
	_, ok := errors.Cause(err).(*UnsupportedIdentityTypeError)
	return ok
}
