/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabclient

// identityContext holds the credentials of a bound identity.
// A nil key means the crypto suite holds the private key.
type identityContext struct {
	label string
	mspID string
	cert  []byte
	key   []byte
}

func (c *identityContext) MspID() string {
	return c.mspID
}

func (c *identityContext) Name() string {
	return c.label
}
