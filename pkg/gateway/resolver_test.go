/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"sort"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/configtree"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/test/mockledger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProvider is an IdentityProvider that records the bindings it makes
type recordingProvider struct {
	idType string
	mspID  string
	err    error
	labels []string
}

func (p *recordingProvider) Type() string {
	return p.idType
}

func (p *recordingProvider) FromJSON(data []byte) (Identity, error) {
	return nil, errors.New("not supported")
}

func (p *recordingProvider) ToJSON(id Identity) ([]byte, error) {
	return nil, errors.New("not supported")
}

func (p *recordingProvider) GetUserContext(client ledger.Client, id Identity, label string) (ledger.IdentityContext, error) {
	p.labels = append(p.labels, label)
	if p.err != nil {
		return nil, p.err
	}
	mspID := p.mspID
	if mspID == "" {
		mspID = id.MspID()
	}
	return &identityContext{mspID: mspID, name: label}, nil
}

func resolverOptions(values map[string]interface{}) configtree.Tree {
	return configtree.Merge(defaultOptions(), values)
}

func TestResolveWalletLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newMockClient(ctrl)
	idCtx, err := resolveIdentity(client, resolverOptions(map[string]interface{}{
		walletKey:   newTestWallet(t),
		identityKey: "user",
	}))
	require.NoError(t, err)
	assert.Equal(t, testMSP, idCtx.MspID())
	assert.Equal(t, "user", idCtx.Name())
}

func TestResolveUsesX509Credentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockledger.NewMockClient(ctrl)
	client.EXPECT().NewIdentityContext("user", testMSP, []byte(testCert), []byte(testPrivKey)).
		Return(&identityContext{mspID: testMSP, name: "user"}, nil)

	_, err := X509Provider().GetUserContext(client, NewX509Identity(testMSP, testCert, testPrivKey), "user")
	require.NoError(t, err)
}

func TestResolveLiteralIdentityWithoutWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idCtx, err := resolveIdentity(newMockClient(ctrl), resolverOptions(map[string]interface{}{
		identityKey: NewX509Identity(testMSP, testCert, testPrivKey),
	}))
	require.NoError(t, err)
	assert.Equal(t, testMSP, idCtx.MspID())
}

func TestResolveExplicitProviderBypassesRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := &recordingProvider{idType: "custom"}
	_, err := resolveIdentity(newMockClient(ctrl), resolverOptions(map[string]interface{}{
		walletKey:           newTestWallet(t),
		identityKey:         "user",
		identityProviderKey: provider,
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, provider.labels)
}

func TestResolveProviderFromWalletRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := newTestWallet(t)
	provider := &recordingProvider{idType: x509Type}
	wallet.ProviderRegistry().AddProvider(provider)

	_, err := resolveIdentity(newMockClient(ctrl), resolverOptions(map[string]interface{}{
		walletKey:   wallet,
		identityKey: "user",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, provider.labels)
}

func TestResolveProviderErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := errors.New("enrollment failed")
	_, err := resolveIdentity(newMockClient(ctrl), resolverOptions(map[string]interface{}{
		walletKey:           newTestWallet(t),
		identityKey:         "user",
		identityProviderKey: &recordingProvider{idType: x509Type, err: expected},
	}))
	assert.Equal(t, expected, err)
}

func TestResolveMspMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := resolveIdentity(newMockClient(ctrl), resolverOptions(map[string]interface{}{
		walletKey:           newTestWallet(t),
		identityKey:         "user",
		identityProviderKey: &recordingProvider{idType: x509Type, mspID: "OtherMSP"},
	}))
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestResolveNilIdentityObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, id := range []Identity{(*X509Identity)(nil), (*HSMX509Identity)(nil)} {
		_, err := resolveIdentity(newMockClient(ctrl), resolverOptions(map[string]interface{}{
			identityKey: id,
		}))
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
		assert.Contains(t, err.Error(), "An identity must be assigned to a Gateway instance")
	}
}

func TestResolveUnsupportedIdentityObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := resolveIdentity(newMockClient(ctrl), resolverOptions(map[string]interface{}{
		identityKey: 42,
	}))
	assert.True(t, IsConfigurationError(err))
}

func TestResolveTLSInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newMockClient(ctrl)
	client.EXPECT().SetTLSClientCertAndKey([]byte("tls-cert"), []byte("tls-key")).Return(nil).Times(1)

	_, err := resolveIdentity(client, resolverOptions(map[string]interface{}{
		walletKey:   newTestWallet(t),
		identityKey: "user",
		tlsInfoKey:  map[string]interface{}{"certificate": "tls-cert", "key": "tls-key"},
		// ignored because tlsInfo is present
		clientTLSIdentityKey: "missing",
	}))
	require.NoError(t, err)
}

func TestResolveClientTLSIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := newTestWallet(t)
	require.NoError(t, wallet.Put("tls", NewX509Identity(testMSP, "tls-cert", "tls-key")))

	client := newMockClient(ctrl)
	client.EXPECT().SetTLSClientCertAndKey([]byte("tls-cert"), []byte("tls-key")).Return(nil).Times(1)

	_, err := resolveIdentity(client, resolverOptions(map[string]interface{}{
		walletKey:            wallet,
		identityKey:          "user",
		clientTLSIdentityKey: "tls",
	}))
	require.NoError(t, err)
}

func TestResolveClientTLSIdentityWithoutKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := newTestWallet(t)
	wallet.ProviderRegistry().AddProvider(NewHSMX509Provider(HSMOptions{}))
	require.NoError(t, wallet.Put("hsm", NewHSMX509Identity(testMSP, testCert)))

	_, err := resolveIdentity(newMockClient(ctrl), resolverOptions(map[string]interface{}{
		walletKey:            wallet,
		identityKey:          "user",
		clientTLSIdentityKey: "hsm",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no private key")
}

func TestResolveTLSErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := errors.New("TLS already configured")
	client := newMockClient(ctrl)
	client.EXPECT().SetTLSClientCertAndKey(gomock.Any(), gomock.Any()).Return(expected)

	_, err := resolveIdentity(client, resolverOptions(map[string]interface{}{
		walletKey:   newTestWallet(t),
		identityKey: "user",
		tlsInfoKey:  map[string]interface{}{"certificate": "c", "key": "k"},
	}))
	assert.Equal(t, expected, err)
}

func TestResolveDoesNotModifyWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := newTestWallet(t)
	require.NoError(t, wallet.Put("tls", NewX509Identity(testMSP, "tls-cert", "tls-key")))
	before, err := wallet.List()
	require.NoError(t, err)
	sort.Strings(before)

	client := newMockClient(ctrl)
	client.EXPECT().SetTLSClientCertAndKey(gomock.Any(), gomock.Any()).Return(nil)

	_, err = resolveIdentity(client, resolverOptions(map[string]interface{}{
		walletKey:            wallet,
		identityKey:          "user",
		clientTLSIdentityKey: "tls",
	}))
	require.NoError(t, err)

	after, err := wallet.List()
	require.NoError(t, err)
	sort.Strings(after)
	assert.Equal(t, before, after)

	id, err := wallet.Get("user")
	require.NoError(t, err)
	assert.Equal(t, NewX509Identity(testMSP, testCert, testPrivKey), id)
}
