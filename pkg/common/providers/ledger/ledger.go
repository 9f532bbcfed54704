/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ledger defines the interfaces a gateway needs from the underlying
// ledger network client. The default implementation lives in pkg/fabclient.
package ledger

import (
	"context"
	"time"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/core"
)

// IdentityContext is an identity bound to a client
type IdentityContext interface {
	// MspID returns the MSP that owns the identity
	MspID() string
	// Name returns the display name, usually the wallet label
	Name() string
}

// ChannelOptions are applied when a client opens a channel
type ChannelOptions struct {
	// Discovery enables discovery based peer selection. When disabled the
	// client targets the peers configured for its organization.
	Discovery bool
}

// Request is a single invocation of a transaction function
type Request struct {
	ChaincodeID  string
	Fcn          string
	Args         [][]byte
	TransientMap map[string][]byte
	// Targets overrides peer selection when not empty
	Targets []string
	// Timeout bounds the whole request when non zero
	Timeout time.Duration
	// CommitStrategy names the event strategy used to wait for commit.
	// Empty means the caller does not need to wait for commit events.
	CommitStrategy string
}

// Channel gives access to a single channel of the network
type Channel interface {
	Name() string
	// OrgPeers returns the peers belonging to the client's organization
	OrgPeers() []string
	Evaluate(ctx context.Context, request *Request) ([]byte, error)
	Submit(ctx context.Context, request *Request) ([]byte, error)
	Close()
}

// Client owns the connection to the network
type Client interface {
	// Name returns a human readable name of the client
	Name() string
	// NewIdentityContext binds credentials to the client. A nil key means the
	// private key is held by the client's crypto provider (for example an HSM).
	NewIdentityContext(label, mspID string, cert, key []byte) (IdentityContext, error)
	// SetTLSClientCertAndKey sets the client credentials used for mutual TLS
	SetTLSClientCertAndKey(cert, key []byte) error
	// SetConnectionOptions applies connection settings verbatim
	SetConnectionOptions(options map[string]interface{}) error
	// Channel opens the given channel on behalf of the identity
	Channel(ctx context.Context, name string, id IdentityContext, opts ChannelOptions) (Channel, error)
	Close()
}

// ConfigLoader turns a connection profile into a client
type ConfigLoader interface {
	LoadFromConfig(ctx context.Context, profile core.ConfigProvider) (Client, error)
}
