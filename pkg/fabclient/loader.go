/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabclient

import (
	"context"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-sdk-go/pkg/fabsdk"
)

// Loader creates clients from connection profiles
type Loader struct {
	sdkOpts []fabsdk.Option
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithSDKOptions passes options to every SDK the loader's clients create,
// for example a core package with a PKCS#11 crypto suite.
func WithSDKOptions(opts ...fabsdk.Option) LoaderOption {
	return func(l *Loader) {
		l.sdkOpts = append(l.sdkOpts, opts...)
	}
}

// NewLoader returns a loader
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFromConfig creates a client for the connection profile
func (l *Loader) LoadFromConfig(ctx context.Context, profile core.ConfigProvider) (ledger.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	client, err := New(profile, l.sdkOpts...)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded client for organization %s", client.Organization())
	return client, nil
}
