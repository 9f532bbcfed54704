/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"reflect"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/configtree"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// resolveIdentity binds the identity named by the merged options to the
// client, and configures the client's mutual TLS credentials if requested.
// Neither the wallet nor the identity is modified.
func resolveIdentity(client ledger.Client, options configtree.Tree) (ledger.IdentityContext, error) {
	wallet, _ := options[walletKey].(IdentityStore)

	label, id, err := lookupIdentity(wallet, options[identityKey])
	if err != nil {
		return nil, err
	}

	provider, err := identityProvider(wallet, options[identityProviderKey], id)
	if err != nil {
		return nil, err
	}

	idCtx, err := provider.GetUserContext(client, id, label)
	if err != nil {
		return nil, err
	}
	if idCtx.MspID() != id.MspID() {
		return nil, newConfigurationError("Identity context MSP ID %s does not match identity MSP ID %s", idCtx.MspID(), id.MspID())
	}

	if err := applyTLSIdentity(client, wallet, options); err != nil {
		return nil, err
	}

	return idCtx, nil
}

// lookupIdentity returns the identity option, reading it from the wallet when
// it is a label. Literal identities are labelled by their MSP ID.
func lookupIdentity(wallet IdentityStore, option interface{}) (string, Identity, error) {
	switch v := option.(type) {
	case nil:
		return "", nil, newConfigurationError("An identity must be assigned to a Gateway instance")
	case string:
		id, err := walletIdentity(wallet, v)
		return v, id, err
	case Identity:
		if isNilIdentity(v) {
			return "", nil, newConfigurationError("An identity must be assigned to a Gateway instance")
		}
		return v.MspID(), v, nil
	default:
		return "", nil, newConfigurationError("Unsupported identity option of type %T", option)
	}
}

// isNilIdentity reports an identity holding a nil pointer
func isNilIdentity(id Identity) bool {
	v := reflect.ValueOf(id)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func walletIdentity(wallet IdentityStore, label string) (Identity, error) {
	if wallet == nil {
		return nil, newConfigurationError("No wallet supplied from which to retrieve identity label")
	}
	id, err := wallet.Get(label)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, &NotFoundError{Label: label}
	}
	return id, nil
}

// identityProvider returns the explicitly configured provider, otherwise the
// one registered for the identity type
func identityProvider(wallet IdentityStore, option interface{}, id Identity) (IdentityProvider, error) {
	if provider, ok := option.(IdentityProvider); ok {
		return provider, nil
	}

	var registry *ProviderRegistry
	if wallet != nil {
		registry = wallet.ProviderRegistry()
	}
	if registry == nil {
		registry = NewProviderRegistry()
	}
	return registry.GetProvider(id.Type())
}

func applyTLSIdentity(client ledger.Client, wallet IdentityStore, options configtree.Tree) error {
	if tlsInfo, ok := configtree.AsTree(options[tlsInfoKey]); ok {
		cert := cast.ToString(tlsInfo["certificate"])
		key := cast.ToString(tlsInfo["key"])
		return client.SetTLSClientCertAndKey([]byte(cert), []byte(key))
	}

	label, ok := options[clientTLSIdentityKey].(string)
	if !ok {
		return nil
	}

	id, err := walletIdentity(wallet, label)
	if err != nil {
		return err
	}

	creds, ok := id.(tlsCredentials)
	if !ok || creds.Key() == "" {
		return errors.Errorf("client TLS identity %s of type %s has no private key", label, id.Type())
	}
	return client.SetTLSClientCertAndKey([]byte(creds.Certificate()), []byte(creds.Key()))
}
