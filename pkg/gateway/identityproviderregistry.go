/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import "sync"

// ProviderRegistry maps identity types to the providers that handle them
type ProviderRegistry struct {
	mutex     sync.RWMutex
	providers map[string]IdentityProvider
}

// NewProviderRegistry returns a registry holding the X.509 provider
func NewProviderRegistry() *ProviderRegistry {
	r := &ProviderRegistry{providers: make(map[string]IdentityProvider)}
	r.AddProvider(X509Provider())
	return r
}

// AddProvider registers a provider for its type, replacing any previous one
func (r *ProviderRegistry) AddProvider(provider IdentityProvider) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.providers[provider.Type()] = provider
}

// GetProvider returns the provider registered for the identity type
func (r *ProviderRegistry) GetProvider(idType string) (IdentityProvider, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	provider, ok := r.providers[idType]
	if !ok {
		return nil, &UnsupportedIdentityTypeError{Type: idType}
	}
	return provider, nil
}
