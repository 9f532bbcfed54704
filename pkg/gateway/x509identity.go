/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

const x509Type = "X.509"

// X509Identity is a certificate and its private key, both PEM encoded
type X509Identity struct {
	Version     int         `json:"version"`
	MSP         string      `json:"mspId"`
	IDType      string      `json:"type"`
	Credentials credentials `json:"credentials"`
}

// Type returns X.509 for this identity type
func (x *X509Identity) Type() string {
	return x509Type
}

// MspID returns the MSP the identity belongs to
func (x *X509Identity) MspID() string {
	return x.MSP
}

// Certificate returns the X509 certificate PEM
func (x *X509Identity) Certificate() string {
	return x.Credentials.Certificate
}

// Key returns the private key PEM
func (x *X509Identity) Key() string {
	return x.Credentials.Key
}

// NewX509Identity creates an X509 identity for storage in a wallet
func NewX509Identity(mspid string, cert string, key string) *X509Identity {
	return &X509Identity{
		Version: 1,
		MSP:     mspid,
		IDType:  x509Type,
		Credentials: credentials{
			Certificate: cert,
			Key:         key,
		},
	}
}
