/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// WalletStore is the interface for implementations that provide backing storage for identities in a wallet.
// To create create a new backing store, implement all the methods defined in this interface and provide
// a factory method that wraps an instance of this in a new Wallet object. E.g:
//   func NewMyWallet() *Wallet {
//	   store := &myWalletStore{ }
//	   return NewWalletWithStore(store)
//   }
type WalletStore interface {
	Put(label string, stream []byte) error
	// Get returns nil content and no error when the label is not stored
	Get(label string) ([]byte, error)
	List() ([]string, error)
	Exists(label string) bool
	Remove(label string) error
}

// IdentityStore is the read side of a wallet used by a gateway to resolve
// identity labels
type IdentityStore interface {
	// Get returns a nil identity and no error when the label is not stored
	Get(label string) (Identity, error)
	ProviderRegistry() *ProviderRegistry
}

// A Wallet stores identity information used to connect to a Hyperledger Fabric network.
// Instances are created using factory methods on the implementing objects.
type Wallet struct {
	store    WalletStore
	registry *ProviderRegistry
}

// NewWalletWithStore creates a wallet backed by the given store
func NewWalletWithStore(store WalletStore) *Wallet {
	return &Wallet{store: store, registry: NewProviderRegistry()}
}

// ProviderRegistry returns the providers used to serialize identities.
// Register additional providers here to store other identity types.
func (w *Wallet) ProviderRegistry() *ProviderRegistry {
	return w.registry
}

// Put an identity into the wallet
//  Parameters:
//  label specifies the name to be associated with the identity.
//  id specifies the identity to store in the wallet.
//
func (w *Wallet) Put(label string, id Identity) error {
	provider, err := w.registry.GetProvider(id.Type())
	if err != nil {
		return err
	}

	content, err := provider.ToJSON(id)
	if err != nil {
		return err
	}

	return w.store.Put(label, content)
}

// Get an identity from the wallet. The implementation class of the identity object will vary depending on its type.
//  Parameters:
//  label specifies the name of the identity in the wallet.
//
//  Returns:
//  The identity object, or nil if the label is not in the wallet.
func (w *Wallet) Get(label string) (Identity, error) {
	content, err := w.store.Get(label)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var header identityHeader
	if err := json.Unmarshal(content, &header); err != nil {
		return nil, errors.Wrap(err, "Invalid identity format")
	}
	if header.Type == "" {
		return nil, errors.New("Invalid identity format: missing type property")
	}

	provider, err := w.registry.GetProvider(header.Type)
	if err != nil {
		return nil, err
	}

	return provider.FromJSON(content)
}

// List returns the labels of all identities in the wallet.
//
//  Returns:
//  A list of identity labels in the wallet.
func (w *Wallet) List() ([]string, error) {
	return w.store.List()
}

// Exists tests whether the wallet contains an identity for the given label.
//  Parameters:
//  label specifies the name of the identity in the wallet.
//
//  Returns:
//  True if the named identity is in the wallet.
func (w *Wallet) Exists(label string) bool {
	return w.store.Exists(label)
}

// Remove an identity from the wallet. If the identity does not exist, this method does nothing.
//  Parameters:
//  label specifies the name of the identity in the wallet.
func (w *Wallet) Remove(label string) error {
	return w.store.Remove(label)
}
