/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabclient

import (
	"context"
	"sync"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/logging"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/hyperledger/fabric-sdk-go/pkg/client/channel"
	mspclient "github.com/hyperledger/fabric-sdk-go/pkg/client/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	mspctx "github.com/hyperledger/fabric-sdk-go/pkg/common/providers/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/fabsdk"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var logger = logging.NewLogger("fabgateway/fabclient")

const (
	organizationKey = "client.organization"
	tlsCertKey      = "client.tlsCerts.client.cert.pem"
	tlsKeyKey       = "client.tlsCerts.client.key.pem"
)

// Client is a ledger client backed by a Fabric SDK instance
type Client struct {
	backend  *overrideBackend
	sdkOpts  []fabsdk.Option
	org      string
	orgPeers []string

	mutex  sync.Mutex
	sdk    *fabsdk.FabricSDK
	closed bool
}

// New creates a client for the connection profile. The profile must name
// the client organization.
func New(profile core.ConfigProvider, opts ...fabsdk.Option) (*Client, error) {
	if profile == nil {
		return nil, errors.New("a connection profile must be supplied")
	}
	backends, err := profile()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load connection profile")
	}

	c := &Client{
		backend: newOverrideBackend(backends),
		sdkOpts: opts,
	}

	value, ok := c.backend.Lookup(organizationKey)
	if !ok {
		return nil, errors.New("No client organization defined in the config")
	}
	c.org = cast.ToString(value)
	if c.org == "" {
		return nil, errors.New("No client organization defined in the config")
	}

	if value, ok := c.backend.Lookup("organizations." + c.org + ".peers"); ok {
		c.orgPeers, err = cast.ToStringSliceE(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid peers for organization %s", c.org)
		}
	}

	return c, nil
}

// Name returns the organization the client acts for
func (c *Client) Name() string {
	return "fabric-sdk:" + c.org
}

// Organization returns the client organization of the connection profile
func (c *Client) Organization() string {
	return c.org
}

// NewIdentityContext binds credentials to the client. The signing identity
// is created when a channel is opened with the context.
func (c *Client) NewIdentityContext(label, mspID string, cert, key []byte) (ledger.IdentityContext, error) {
	if len(cert) == 0 {
		return nil, errors.Errorf("identity %s has no certificate", label)
	}
	return &identityContext{
		label: label,
		mspID: mspID,
		cert:  cert,
		key:   key,
	}, nil
}

// SetTLSClientCertAndKey sets the PEM encoded credentials for mutual TLS
func (c *Client) SetTLSClientCertAndKey(cert, key []byte) error {
	c.backend.set(tlsCertKey, string(cert))
	c.backend.set(tlsKeyKey, string(key))
	c.resetSDK()
	return nil
}

// SetConnectionOptions merges options over the connection profile. Options
// set after the first channel was opened apply to channels opened later.
func (c *Client) SetConnectionOptions(options map[string]interface{}) error {
	c.backend.merge(options)
	c.resetSDK()
	return nil
}

// Channel opens a channel on behalf of the identity
func (c *Client) Channel(ctx context.Context, name string, id ledger.IdentityContext, opts ledger.ChannelOptions) (ledger.Channel, error) {
	idCtx, ok := id.(*identityContext)
	if !ok {
		return nil, errors.Errorf("identity context %T was not created by this client", id)
	}

	sdk, err := c.getSDK()
	if err != nil {
		return nil, err
	}

	mspClient, err := mspclient.New(sdk.Context(), mspclient.WithOrg(c.org))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MSP client")
	}

	identityOpts := []mspctx.SigningIdentityOption{mspctx.WithCert(idCtx.cert)}
	if idCtx.key != nil {
		identityOpts = append(identityOpts, mspctx.WithPrivateKey(idCtx.key))
	}
	signingIdentity, err := mspClient.CreateSigningIdentity(identityOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create signing identity for %s", idCtx.label)
	}

	channelProvider := sdk.ChannelContext(name, fabsdk.WithIdentity(signingIdentity), fabsdk.WithOrg(c.org))
	client, err := channel.New(channelProvider)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create new channel client")
	}

	logger.Debugf("opened channel %s for %s (discovery: %t)", name, idCtx.label, opts.Discovery)

	return &fabChannel{
		name:      name,
		client:    client,
		orgPeers:  c.orgPeers,
		discovery: opts.Discovery,
	}, nil
}

// Close releases the SDK. Channels opened by the client can no longer be used.
func (c *Client) Close() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.closed = true
	if c.sdk != nil {
		c.sdk.Close()
		c.sdk = nil
	}
}

func (c *Client) getSDK() (*fabsdk.FabricSDK, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return nil, errors.New("client is closed")
	}
	if c.sdk != nil {
		return c.sdk, nil
	}

	sdk, err := fabsdk.New(c.configProvider, c.sdkOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SDK")
	}
	logger.Debugf("created SDK for organization %s", c.org)
	c.sdk = sdk
	return sdk, nil
}

// resetSDK discards the SDK so that the next channel sees the latest options
func (c *Client) resetSDK() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.sdk != nil {
		logger.Warnf("connection options changed after the SDK was created, recreating it")
		c.sdk.Close()
		c.sdk = nil
	}
}

func (c *Client) configProvider() ([]core.ConfigBackend, error) {
	return []core.ConfigBackend{c.backend}, nil
}
