/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/configtree"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/test/mockledger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestX509ProviderRoundTrip(t *testing.T) {
	provider := X509Provider()
	id := NewX509Identity(testMSP, testCert, testPrivKey)

	data, err := provider.ToJSON(id)
	require.NoError(t, err)

	decoded, err := provider.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestX509ProviderRejectsOtherTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := X509Provider()
	hsm := NewHSMX509Identity(testMSP, testCert)

	_, err := provider.ToJSON(hsm)
	assert.Error(t, err)

	_, err = provider.GetUserContext(mockledger.NewMockClient(ctrl), hsm, "user")
	assert.Error(t, err)
}

func TestHSMProviderRoundTrip(t *testing.T) {
	provider := NewHSMX509Provider(HSMOptions{})
	id := NewHSMX509Identity(testMSP, testCert)

	data, err := provider.ToJSON(id)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "privateKey")

	decoded, err := provider.FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)

	_, err = provider.FromJSON([]byte(`{"type":"HSM-X.509","mspId":"msp"}`))
	assert.Error(t, err, "a certificate is required")
}

func TestHSMProviderGetUserContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewHSMX509Provider(HSMOptions{
		Lib:   "/usr/lib/softhsm/libsofthsm2.so",
		Pin:   "98765432",
		Label: "ForFabric",
	})

	var options map[string]interface{}
	client := mockledger.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().SetConnectionOptions(gomock.Any()).DoAndReturn(func(o map[string]interface{}) error {
			options = o
			return nil
		}),
		client.EXPECT().NewIdentityContext("hsm-user", testMSP, []byte(testCert), gomock.Nil()).
			Return(&identityContext{mspID: testMSP, name: "hsm-user"}, nil),
	)

	idCtx, err := provider.GetUserContext(client, NewHSMX509Identity(testMSP, testCert), "hsm-user")
	require.NoError(t, err)
	assert.Equal(t, testMSP, idCtx.MspID())

	value, ok := configtree.Get(options, "client.BCCSP.security.default.provider")
	require.True(t, ok)
	assert.Equal(t, "PKCS11", value)
	value, _ = configtree.Get(options, "client.BCCSP.security.library")
	assert.Equal(t, "/usr/lib/softhsm/libsofthsm2.so", value)
	value, _ = configtree.Get(options, "client.BCCSP.security.label")
	assert.Equal(t, "ForFabric", value)
	value, _ = configtree.Get(options, "client.BCCSP.security.hashAlgorithm")
	assert.Equal(t, "SHA2", value)
	value, _ = configtree.Get(options, "client.BCCSP.security.level")
	assert.Equal(t, 256, value)
}

func TestHSMProviderConnectionOptionsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockledger.NewMockClient(ctrl)
	client.EXPECT().SetConnectionOptions(gomock.Any()).Return(errors.New("client already in use"))

	_, err := NewHSMX509Provider(HSMOptions{}).GetUserContext(client, NewHSMX509Identity(testMSP, testCert), "hsm-user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client already in use")
}

func TestProviderRegistry(t *testing.T) {
	registry := NewProviderRegistry()

	provider, err := registry.GetProvider(x509Type)
	require.NoError(t, err)
	assert.Equal(t, x509Type, provider.Type())

	_, err = registry.GetProvider(HSMX509Type)
	require.Error(t, err)
	assert.True(t, IsUnsupportedIdentityType(err))
	assert.Equal(t, "Unsupported identity type: HSM-X.509", err.Error())

	registry.AddProvider(NewHSMX509Provider(HSMOptions{}))
	provider, err = registry.GetProvider(HSMX509Type)
	require.NoError(t, err)
	assert.Equal(t, HSMX509Type, provider.Type())
}

func TestErrorHelpersSeeThroughWrapping(t *testing.T) {
	assert.True(t, IsConfigurationError(errors.Wrap(newConfigurationError("bad"), "connect")))
	assert.True(t, IsNotFound(errors.WithMessage(&NotFoundError{Label: "x"}, "lookup")))
	assert.True(t, IsUnsupportedIdentityType(errors.Wrap(&UnsupportedIdentityTypeError{Type: "x"}, "put")))

	assert.False(t, IsConfigurationError(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}
