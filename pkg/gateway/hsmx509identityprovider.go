/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"encoding/json"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/configtree"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/pkg/errors"
)

// HSMOptions locate the PKCS#11 module and the token holding the keys
type HSMOptions struct {
	Lib   string `json:"lib"`
	Pin   string `json:"pin"`
	Label string `json:"label"`
	// HashAlgorithm defaults to SHA2
	HashAlgorithm string `json:"hashAlgorithm,omitempty"`
	// SecurityLevel defaults to 256
	SecurityLevel int `json:"securityLevel,omitempty"`
	SoftVerify    bool `json:"softVerify,omitempty"`
}

type hsmX509Provider struct {
	options HSMOptions
}

// NewHSMX509Provider returns a provider for HSM-X.509 identities. It switches
// the client's crypto suite to PKCS#11 before binding an identity, so the
// client must be built with a PKCS#11 capable crypto suite.
func NewHSMX509Provider(options HSMOptions) IdentityProvider {
	if options.HashAlgorithm == "" {
		options.HashAlgorithm = "SHA2"
	}
	if options.SecurityLevel == 0 {
		options.SecurityLevel = 256
	}
	return &hsmX509Provider{options: options}
}

func (p *hsmX509Provider) Type() string {
	return HSMX509Type
}

func (p *hsmX509Provider) FromJSON(data []byte) (Identity, error) {
	id := &HSMX509Identity{}
	if err := json.Unmarshal(data, id); err != nil {
		return nil, errors.Wrap(err, "Invalid identity format")
	}
	if id.Credentials.Certificate == "" {
		return nil, errors.New("Invalid identity format: HSM-X.509 identity requires a certificate")
	}
	return id, nil
}

func (p *hsmX509Provider) ToJSON(id Identity) ([]byte, error) {
	hsm, ok := id.(*HSMX509Identity)
	if !ok {
		return nil, errors.Errorf("HSM-X.509 provider cannot serialize identity of type %s", id.Type())
	}
	return json.Marshal(hsm)
}

func (p *hsmX509Provider) GetUserContext(client ledger.Client, id Identity, label string) (ledger.IdentityContext, error) {
	hsm, ok := id.(*HSMX509Identity)
	if !ok {
		return nil, errors.Errorf("HSM-X.509 provider cannot bind identity of type %s", id.Type())
	}
	if err := client.SetConnectionOptions(p.cryptoOptions()); err != nil {
		return nil, errors.Wrap(err, "failed to configure PKCS#11 crypto suite")
	}
	// the private key is looked up in the HSM by the certificate's public key
	return client.NewIdentityContext(label, hsm.MspID(), []byte(hsm.Certificate()), nil)
}

func (p *hsmX509Provider) cryptoOptions() configtree.Tree {
	security := configtree.Tree{}
	configtree.Set(security, "enabled", true)
	configtree.Set(security, "default.provider", "PKCS11")
	configtree.Set(security, "hashAlgorithm", p.options.HashAlgorithm)
	configtree.Set(security, "softVerify", p.options.SoftVerify)
	configtree.Set(security, "level", p.options.SecurityLevel)
	configtree.Set(security, "pin", p.options.Pin)
	configtree.Set(security, "label", p.options.Label)
	configtree.Set(security, "library", p.options.Lib)

	opts := configtree.Tree{}
	configtree.Set(opts, "client.BCCSP.security", security)
	return opts
}
