/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"os"
	"time"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/configtree"
	"github.com/hyperledger/fabric-gateway-go/pkg/util/pathvar"
	"github.com/pkg/errors"
)

const (
	identityKey          = "identity"
	walletKey            = "wallet"
	identityProviderKey  = "identityProvider"
	clientTLSIdentityKey = "clientTlsIdentity"
	tlsInfoKey           = "tlsInfo"
	connectionOptionsKey = "connection-options"

	eventStrategyKey = "eventHandlerOptions.strategy"
	commitTimeoutKey = "eventHandlerOptions.commitTimeout"
	queryStrategyKey = "queryHandlerOptions.strategy"
	queryTimeoutKey  = "queryHandlerOptions.timeout"
	discoveryKey     = "discovery.enabled"
)

// Option functional arguments can be supplied when connecting to the gateway.
// Each option writes into the tree of overrides that is merged over the
// gateway defaults.
type Option = func(overrides configtree.Tree) error

func setOption(path string, value interface{}) Option {
	return func(o configtree.Tree) error {
		configtree.Set(o, path, value)
		return nil
	}
}

// WithIdentity is an optional argument to the Connect method which specifies
// the identity that is to be used to connect to the network.
// All operations under this gateway connection will be performed using this identity.
func WithIdentity(wallet IdentityStore, label string) Option {
	return func(o configtree.Tree) error {
		if wallet == nil {
			return errors.New("wallet must not be nil")
		}
		o[walletKey] = wallet
		o[identityKey] = label
		return nil
	}
}

// WithIdentityLabel names the wallet identity to connect with. The wallet is
// given separately with WithWallet.
func WithIdentityLabel(label string) Option {
	return setOption(identityKey, label)
}

// WithIdentityObject connects with an identity that is not held in a wallet
func WithIdentityObject(id Identity) Option {
	return setOption(identityKey, id)
}

// WithX509Identity connects with the given X.509 credentials
func WithX509Identity(mspID, cert, key string) Option {
	return setOption(identityKey, NewX509Identity(mspID, cert, key))
}

// WithWallet sets the wallet identity labels are resolved from
func WithWallet(wallet IdentityStore) Option {
	return setOption(walletKey, wallet)
}

// WithIdentityProvider overrides the provider selected by identity type
func WithIdentityProvider(provider IdentityProvider) Option {
	return setOption(identityProviderKey, provider)
}

// WithClientTLSIdentity names a wallet identity whose certificate and key are
// used as the client credentials for mutual TLS
func WithClientTLSIdentity(label string) Option {
	return setOption(clientTLSIdentityKey, label)
}

// WithTLSInfo sets the client certificate and key PEM used for mutual TLS.
// It takes precedence over WithClientTLSIdentity.
func WithTLSInfo(cert, key string) Option {
	return setOption(tlsInfoKey, configtree.Tree{"certificate": cert, "key": key})
}

// WithConnectionOptions sets client connection settings, applied verbatim to
// the client, for example {"client": {"BCCSP": ...}}
func WithConnectionOptions(options map[string]interface{}) Option {
	return setOption(connectionOptionsKey, configtree.Clone(options))
}

// WithCommitHandler is an optional argument to the Connect method which
// allows an alternative commit handler to be specified. The commit handler defines how
// client code should wait to receive commit events from peers following submit of a transaction.
// A nil handler disables waiting for commit events.
func WithCommitHandler(handler CommitHandlerFactory) Option {
	if handler == nil {
		return setOption(eventStrategyKey, nil)
	}
	return setOption(eventStrategyKey, handler)
}

// WithCommitTimeout bounds a submit, including waiting for commit events
func WithCommitTimeout(timeout time.Duration) Option {
	return setOption(commitTimeoutKey, timeout)
}

// WithQueryHandler selects the peers evaluated transactions are sent to
func WithQueryHandler(handler QueryHandlerFactory) Option {
	if handler == nil {
		return setOption(queryStrategyKey, nil)
	}
	return setOption(queryStrategyKey, handler)
}

// WithQueryTimeout bounds an evaluate
func WithQueryTimeout(timeout time.Duration) Option {
	return setOption(queryTimeoutKey, timeout)
}

// WithDiscovery is an optional argument to the Connect method which
// enables or disables service discovery for all transaction submissions for this gateway.
func WithDiscovery(discovery bool) Option {
	return setOption(discoveryKey, discovery)
}

// WithOptions merges a raw option tree into the overrides. Keys mapped to nil
// reset the matching default.
func WithOptions(options map[string]interface{}) Option {
	return func(o configtree.Tree) error {
		merged := configtree.Merge(o, options)
		for k, v := range merged {
			o[k] = v
		}
		return nil
	}
}

// WithOptionsFile reads a YAML option tree, see WithOptions. Timeouts are in
// seconds or Go duration strings and strategies are given by name. Variables
// such as ${HOME} in path are expanded.
func WithOptionsFile(path string) Option {
	return func(o configtree.Tree) error {
		file := pathvar.Subst(path)
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "failed to read gateway options from %s", file)
		}
		options, err := configtree.FromYAML(data)
		if err != nil {
			return errors.Wrapf(err, "failed to parse gateway options in %s", file)
		}
		return WithOptions(options)(o)
	}
}
