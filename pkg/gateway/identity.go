/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

// Identity represents a specific identity format
type Identity interface {
	// Type names the format, and selects the IdentityProvider for it
	Type() string
	MspID() string
}

// the fields common to every serialized identity
type identityHeader struct {
	Version int    `json:"version"`
	MspID   string `json:"mspId"`
	Type    string `json:"type"`
}

type credentials struct {
	Certificate string `json:"certificate"`
	Key         string `json:"privateKey,omitempty"`
}

// tlsCredentials is implemented by identities that can be used as a mutual
// TLS client identity.
type tlsCredentials interface {
	Certificate() string
	Key() string
}
