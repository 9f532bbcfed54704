/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

// HSMX509Type is the identity type of certificates whose private key is held
// in a hardware security module
const HSMX509Type = "HSM-X.509"

// HSMX509Identity represents an X509 identity whose private key never leaves
// the HSM. Only the certificate is stored in the wallet.
type HSMX509Identity struct {
	Version     int         `json:"version"`
	MSP         string      `json:"mspId"`
	IDType      string      `json:"type"`
	Credentials credentials `json:"credentials"`
}

// Type returns HSM-X.509 for this identity type
func (x *HSMX509Identity) Type() string {
	return HSMX509Type
}

// MspID returns the MSP the identity belongs to
func (x *HSMX509Identity) MspID() string {
	return x.MSP
}

// Certificate returns the X509 certificate PEM
func (x *HSMX509Identity) Certificate() string {
	return x.Credentials.Certificate
}

// NewHSMX509Identity creates an HSM backed identity for storage in a wallet
func NewHSMX509Identity(mspid string, cert string) *HSMX509Identity {
	return &HSMX509Identity{1, mspid, HSMX509Type, credentials{Certificate: cert}}
}
