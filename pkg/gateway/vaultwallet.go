/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"encoding/json"
	"path"

	"github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
)

const (
	vaultMount        = "secret"
	vaultDefaultAddrs = "http://localhost:8200"
)

// vaultWalletStore keeps identities in a Vault KV version 2 secrets engine
// mounted at secret/. Each identity is one secret under the wallet path.
type vaultWalletStore struct {
	path   string
	client *api.Logical
}

// NewVaultWallet creates an instance of a wallet, backed by key/values in Vault
//  Parameters:
//  walletPath is the path of the wallet below the secret/ mount.
//  token is the Vault token used for every request.
//  vaultConfig is the client configuration, nil connects to http://localhost:8200
func NewVaultWallet(walletPath, token string, vaultConfig *api.Config) (*Wallet, error) {
	if walletPath == "" {
		return nil, errors.New("wallet path is empty")
	}
	if token == "" {
		return nil, errors.New("token is empty")
	}
	if vaultConfig == nil {
		vaultConfig = api.DefaultConfig()
		vaultConfig.Address = vaultDefaultAddrs
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, errors.Wrap(err, "can't create Vault client")
	}
	client.SetToken(token)

	store := &vaultWalletStore{path: walletPath, client: client.Logical()}
	return NewWalletWithStore(store), nil
}

func (s *vaultWalletStore) dataPath(label string) string {
	return path.Join(vaultMount, "data", s.path, label)
}

func (s *vaultWalletStore) metadataPath(label string) string {
	return path.Join(vaultMount, "metadata", s.path, label)
}

// Put an identity into the wallet.
func (s *vaultWalletStore) Put(label string, content []byte) error {
	var data map[string]interface{}
	if err := json.Unmarshal(content, &data); err != nil {
		return errors.Wrap(err, "identity is not a JSON object")
	}

	_, err := s.client.Write(s.dataPath(label), map[string]interface{}{"data": data})
	if err != nil {
		return errors.Wrapf(err, "can't write identity [%s] to Vault", label)
	}
	return nil
}

// Get an identity from the wallet.
func (s *vaultWalletStore) Get(label string) ([]byte, error) {
	secret, err := s.client.Read(s.dataPath(label))
	if err != nil {
		return nil, errors.Wrapf(err, "can't read identity [%s] from Vault", label)
	}
	if secret == nil {
		return nil, nil
	}

	// a deleted version reads back with null data
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok || data == nil {
		return nil, nil
	}

	content, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "can't serialize identity")
	}
	return content, nil
}

// Remove an identity from the wallet. If the identity does not exist, this method does nothing.
// All versions of the secret are removed.
func (s *vaultWalletStore) Remove(label string) error {
	if _, err := s.client.Delete(s.metadataPath(label)); err != nil {
		return errors.Wrapf(err, "can't delete identity [%s] from Vault", label)
	}
	return nil
}

// Exists tests the existence of an identity in the wallet.
func (s *vaultWalletStore) Exists(label string) bool {
	content, err := s.Get(label)
	return err == nil && content != nil
}

// List all of the labels in the wallet.
func (s *vaultWalletStore) List() ([]string, error) {
	secret, err := s.client.List(s.metadataPath(""))
	if err != nil {
		return nil, errors.Wrap(err, "can't list identities in Vault")
	}

	labels := []string{}
	if secret == nil {
		return labels, nil
	}

	keys, ok := secret.Data["keys"].([]interface{})
	if !ok {
		return nil, errors.New("unexpected key list returned by Vault")
	}

	for _, key := range keys {
		label, ok := key.(string)
		if !ok {
			return nil, errors.New("unexpected key returned by Vault")
		}
		labels = append(labels, label)
	}
	return labels, nil
}
