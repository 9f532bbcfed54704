/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import "sync"

type inMemoryWalletStore struct {
	mutex   sync.RWMutex
	storage map[string][]byte
}

// NewInMemoryWallet creates an instance of a wallet, held in memory.
// This implementation is not backed by a persistent store.
//
//  Returns:
//  A Wallet object.
func NewInMemoryWallet() *Wallet {
	return NewWalletWithStore(&inMemoryWalletStore{storage: make(map[string][]byte, 10)})
}

// Put an identity into the wallet.
func (s *inMemoryWalletStore) Put(label string, content []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.storage[label] = append([]byte(nil), content...)
	return nil
}

// Get an identity from the wallet.
func (s *inMemoryWalletStore) Get(label string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.storage[label], nil
}

// Remove an identity from the wallet. If the identity does not exist, this method does nothing.
func (s *inMemoryWalletStore) Remove(label string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.storage, label)
	return nil
}

// Exists returns true if the identity is in the wallet.
func (s *inMemoryWalletStore) Exists(label string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := s.storage[label]
	return ok
}

// List all of the labels in the wallet.
func (s *inMemoryWalletStore) List() ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	labels := make([]string, 0, len(s.storage))
	for label := range s.storage {
		labels = append(labels, label)
	}
	return labels, nil
}
