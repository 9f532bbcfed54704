/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"sync"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/configtree"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/logging"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/hyperledger/fabric-gateway-go/pkg/fabclient"
	"github.com/hyperledger/fabric-gateway-go/pkg/util/pathvar"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/pkg/errors"
)

var logger = logging.NewLogger("fabgateway/gateway")

// ClientSource supplies the client a gateway connects with. owned reports
// whether the gateway created the client and so must close it.
type ClientSource = func(ctx context.Context, loader ledger.ConfigLoader) (client ledger.Client, owned bool, err error)

// FromProfile loads the client from a connection profile file (YAML or JSON).
// Variables such as ${HOME} in path are expanded.
func FromProfile(path string) ClientSource {
	return FromProfileProvider(config.FromFile(pathvar.Subst(path)))
}

// FromProfileProvider loads the client from a connection profile
func FromProfileProvider(profile core.ConfigProvider) ClientSource {
	return func(ctx context.Context, loader ledger.ConfigLoader) (ledger.Client, bool, error) {
		client, err := loader.LoadFromConfig(ctx, profile)
		if err != nil {
			return nil, false, err
		}
		return client, true, nil
	}
}

// FromClient connects with an existing client. The gateway never closes it.
func FromClient(client ledger.Client) ClientSource {
	return func(ctx context.Context, loader ledger.ConfigLoader) (ledger.Client, bool, error) {
		if client == nil {
			return nil, false, newConfigurationError("A client must be supplied")
		}
		return client, false, nil
	}
}

// Gateway is the entry point to a Fabric network. A Gateway is created
// unconnected, holds one client and one identity while connected, and caches
// a Network per channel name.
type Gateway struct {
	loader ledger.ConfigLoader

	mutex   sync.RWMutex
	session *session
}

// session is the state of a connected gateway
type session struct {
	client      ledger.Client
	ownsClient  bool
	identityCtx ledger.IdentityContext
	options     configtree.Tree
	handlers    *handlerOptions
	networks    *networkCache
}

func (s *session) close() {
	s.networks.close()
	if s.ownsClient {
		s.client.Close()
	}
}

// InitOption configures a Gateway when it is created
type InitOption = func(*Gateway)

// WithConfigLoader sets the loader used to turn connection profiles into
// clients. The default loader builds clients over the Fabric SDK.
func WithConfigLoader(loader ledger.ConfigLoader) InitOption {
	return func(gw *Gateway) {
		gw.loader = loader
	}
}

// New creates an unconnected gateway
func New(opts ...InitOption) *Gateway {
	gw := &Gateway{}
	for _, opt := range opts {
		opt(gw)
	}
	if gw.loader == nil {
		gw.loader = fabclient.NewLoader()
	}
	return gw
}

// Connect creates a gateway and connects it, see Gateway.Connect
func Connect(ctx context.Context, source ClientSource, options ...Option) (*Gateway, error) {
	gw := New()
	if err := gw.Connect(ctx, source, options...); err != nil {
		return nil, err
	}
	return gw, nil
}

// Connect to a network with the client from source. Options are merged over
// the gateway defaults and must assign an identity. Connecting a connected
// gateway replaces its session and closes the networks of the previous one.
// Connect must not run concurrently with Connect or Disconnect.
func (gw *Gateway) Connect(ctx context.Context, source ClientSource, options ...Option) (err error) {
	defer func() {
		connectsTotal.WithLabelValues(resultLabel(err)).Inc()
	}()

	if source == nil {
		return newConfigurationError("A client source must be supplied")
	}

	overrides := configtree.Tree{}
	for _, option := range options {
		if err := option(overrides); err != nil {
			return errors.Wrap(err, "Failed to apply gateway option")
		}
	}
	merged := configtree.Merge(defaultOptions(), overrides)

	handlers, err := decodeHandlerOptions(merged)
	if err != nil {
		return err
	}

	client, owned, err := source(ctx, gw.loader)
	if err != nil {
		return err
	}

	idCtx, err := bind(client, merged)
	if err != nil {
		if owned {
			client.Close()
		}
		return err
	}

	s := &session{
		client:      client,
		ownsClient:  owned,
		identityCtx: idCtx,
		options:     merged,
		handlers:    handlers,
	}
	s.networks = newNetworkCache(func(name string) (*Network, error) {
		return gw.buildNetwork(s, name)
	})

	gw.mutex.Lock()
	previous := gw.session
	gw.session = s
	gw.mutex.Unlock()

	if previous != nil {
		logger.Debugf("Closing previous session of client [%s]", previous.client.Name())
		previous.close()
	}

	logger.Infof("Connected to client [%s] as [%s] of MSP [%s]", client.Name(), idCtx.Name(), idCtx.MspID())
	return nil
}

// bind applies the connection options to the client and resolves the identity
func bind(client ledger.Client, options configtree.Tree) (ledger.IdentityContext, error) {
	if connectionOptions, ok := configtree.AsTree(options[connectionOptionsKey]); ok {
		if err := client.SetConnectionOptions(connectionOptions); err != nil {
			return nil, err
		}
	}
	return resolveIdentity(client, options)
}

func (gw *Gateway) buildNetwork(s *session, name string) (*Network, error) {
	logger.Debugf("Opening network [%s]", name)

	channel, err := s.client.Channel(context.Background(), name, s.identityCtx, ledger.ChannelOptions{
		Discovery: s.handlers.Discovery.Enabled,
	})
	if err != nil {
		return nil, err
	}
	return newNetwork(gw, channel, s.handlers), nil
}

func (gw *Gateway) current() *session {
	gw.mutex.RLock()
	defer gw.mutex.RUnlock()
	return gw.session
}

// GetNetwork returns an object representing a network (channel). The network
// is built on first use and shared by later calls with the same name.
//  Parameters:
//  name is the name of the network (channel name)
//
//  Returns:
//  A Network object representing the channel
func (gw *Gateway) GetNetwork(ctx context.Context, name string) (*Network, error) {
	s := gw.current()
	if s == nil {
		return nil, newConfigurationError("Gateway is not connected")
	}
	return s.networks.get(ctx, name)
}

// GetOptions returns a copy of the merged options of the connected gateway,
// or nil when the gateway is not connected
func (gw *Gateway) GetOptions() configtree.Tree {
	s := gw.current()
	if s == nil {
		return nil
	}
	return configtree.Clone(s.options)
}

// Client returns the client of the connected gateway
func (gw *Gateway) Client() ledger.Client {
	s := gw.current()
	if s == nil {
		return nil
	}
	return s.client
}

// IdentityContext returns the identity the gateway is connected as
func (gw *Gateway) IdentityContext() ledger.IdentityContext {
	s := gw.current()
	if s == nil {
		return nil
	}
	return s.identityCtx
}

// Disconnect closes every network and, if the gateway loaded it, the client.
// The gateway may be connected again afterwards.
func (gw *Gateway) Disconnect() {
	gw.mutex.Lock()
	s := gw.session
	gw.session = nil
	gw.mutex.Unlock()

	if s == nil {
		return
	}
	s.close()
	logger.Infof("Disconnected from client [%s]", s.client.Name())
}
