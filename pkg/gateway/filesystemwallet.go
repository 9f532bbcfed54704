/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperledger/fabric-gateway-go/pkg/util/pathvar"
)

const dataFileExtension string = ".id"

type fileSystemWalletStore struct {
	path string
}

// NewFileSystemWallet creates a wallet backed by files in the directory at
// path, one <label>.id file per identity. The directory is created when
// missing and variables such as ${HOME} in path are expanded.
func NewFileSystemWallet(path string) (*Wallet, error) {
	cleanPath := filepath.Clean(pathvar.Subst(path))
	err := os.MkdirAll(cleanPath, os.ModePerm)

	if err != nil {
		return nil, err
	}

	store := &fileSystemWalletStore{cleanPath}
	return NewWalletWithStore(store), nil
}

func (fsw *fileSystemWalletStore) pathname(label string) string {
	return filepath.Clean(filepath.Join(fsw.path, label) + dataFileExtension)
}

// Put an identity into the wallet.
func (fsw *fileSystemWalletStore) Put(label string, content []byte) error {
	f, err := os.OpenFile(fsw.pathname(label), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)

	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close() // ignore error; Write error takes precedence
		return err
	}

	return f.Close()
}

// Get an identity from the wallet.
func (fsw *fileSystemWalletStore) Get(label string) ([]byte, error) {
	content, err := os.ReadFile(fsw.pathname(label))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return content, err
}

// Remove an identity from the wallet. If the identity does not exist, this method does nothing.
func (fsw *fileSystemWalletStore) Remove(label string) error {
	err := os.Remove(fsw.pathname(label))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists tests the existence of an identity in the wallet.
func (fsw *fileSystemWalletStore) Exists(label string) bool {
	_, err := os.Stat(fsw.pathname(label))
	return err == nil
}

// List all of the labels in the wallet.
func (fsw *fileSystemWalletStore) List() ([]string, error) {
	files, err := os.ReadDir(fsw.path)

	if err != nil {
		return nil, err
	}

	labels := []string{}
	for _, file := range files {
		name := file.Name()
		if !file.IsDir() && filepath.Ext(name) == dataFileExtension {
			labels = append(labels, strings.TrimSuffix(name, dataFileExtension))
		}
	}

	return labels, nil
}
