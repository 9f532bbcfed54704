/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"encoding/json"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/pkg/errors"
)

// IdentityProvider knows how to store one type of identity and how to bind
// it to a client.
type IdentityProvider interface {
	Type() string
	FromJSON(data []byte) (Identity, error)
	ToJSON(id Identity) ([]byte, error)
	// GetUserContext binds the identity to the client under the given label
	GetUserContext(client ledger.Client, id Identity, label string) (ledger.IdentityContext, error)
}

type x509Provider struct{}

// X509Provider returns the provider for X.509 identities
func X509Provider() IdentityProvider {
	return &x509Provider{}
}

func (p *x509Provider) Type() string {
	return x509Type
}

func (p *x509Provider) FromJSON(data []byte) (Identity, error) {
	id := &X509Identity{}
	if err := json.Unmarshal(data, id); err != nil {
		return nil, errors.Wrap(err, "Invalid identity format")
	}
	if id.Credentials.Certificate == "" || id.Credentials.Key == "" {
		return nil, errors.New("Invalid identity format: X.509 identity requires a certificate and a private key")
	}
	return id, nil
}

func (p *x509Provider) ToJSON(id Identity) ([]byte, error) {
	x509, ok := id.(*X509Identity)
	if !ok {
		return nil, errors.Errorf("X.509 provider cannot serialize identity of type %s", id.Type())
	}
	return json.Marshal(x509)
}

func (p *x509Provider) GetUserContext(client ledger.Client, id Identity, label string) (ledger.IdentityContext, error) {
	x509, ok := id.(*X509Identity)
	if !ok {
		return nil, errors.Errorf("X.509 provider cannot bind identity of type %s", id.Type())
	}
	return client.NewIdentityContext(label, x509.MspID(), []byte(x509.Certificate()), []byte(x509.Key()))
}
