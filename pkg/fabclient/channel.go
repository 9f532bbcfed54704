/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabclient

import (
	"context"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/hyperledger/fabric-sdk-go/pkg/client/channel"
	"github.com/hyperledger/fabric-sdk-go/pkg/client/channel/invoke"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/fab"
)

// channelClient is the part of the SDK channel client used here
type channelClient interface {
	Query(request channel.Request, options ...channel.RequestOption) (channel.Response, error)
	Execute(request channel.Request, options ...channel.RequestOption) (channel.Response, error)
	InvokeHandler(handler invoke.Handler, request channel.Request, options ...channel.RequestOption) (channel.Response, error)
}

type fabChannel struct {
	name      string
	client    channelClient
	orgPeers  []string
	discovery bool
}

func (ch *fabChannel) Name() string {
	return ch.name
}

func (ch *fabChannel) OrgPeers() []string {
	return ch.orgPeers
}

func (ch *fabChannel) Evaluate(ctx context.Context, request *ledger.Request) ([]byte, error) {
	response, err := ch.client.Query(toChannelRequest(request), ch.requestOptions(ctx, fab.Query, request)...)
	if err != nil {
		return nil, err
	}
	return response.Payload, nil
}

// Submit endorses and orders the request. With a commit strategy it waits
// for the commit event of the transaction, otherwise it returns once the
// orderer has accepted the transaction.
func (ch *fabChannel) Submit(ctx context.Context, request *ledger.Request) ([]byte, error) {
	var response channel.Response
	var err error
	if request.CommitStrategy != "" {
		logger.Debugf("submitting %s on %s with commit strategy %s", request.Fcn, ch.name, request.CommitStrategy)
		response, err = ch.client.Execute(toChannelRequest(request), ch.requestOptions(ctx, fab.Execute, request)...)
	} else {
		logger.Debugf("submitting %s on %s without waiting for commit", request.Fcn, ch.name)
		response, err = ch.client.InvokeHandler(newSubmitWithoutCommitHandler(), toChannelRequest(request), ch.requestOptions(ctx, fab.Execute, request)...)
	}
	if err != nil {
		return nil, err
	}
	return response.Payload, nil
}

// Close is a no-op, channel resources belong to the SDK
func (ch *fabChannel) Close() {
	logger.Debugf("closed channel %s", ch.name)
}

func (ch *fabChannel) requestOptions(ctx context.Context, timeoutType fab.TimeoutType, request *ledger.Request) []channel.RequestOption {
	var options []channel.RequestOption

	targets := request.Targets
	if len(targets) == 0 && !ch.discovery {
		targets = ch.orgPeers
	}
	if len(targets) > 0 {
		options = append(options, channel.WithTargetEndpoints(targets...))
	}

	if request.Timeout > 0 {
		options = append(options, channel.WithTimeout(timeoutType, request.Timeout))
	}
	return append(options, channel.WithParentContext(ctx))
}

func toChannelRequest(request *ledger.Request) channel.Request {
	return channel.Request{
		ChaincodeID:  request.ChaincodeID,
		Fcn:          request.Fcn,
		Args:         request.Args,
		TransientMap: request.TransientMap,
	}
}
