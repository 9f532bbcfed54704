/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabclient

import (
	"context"
	"testing"
	"time"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/hyperledger/fabric-sdk-go/pkg/client/channel"
	"github.com/hyperledger/fabric-sdk-go/pkg/client/channel/invoke"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method  string
	request channel.Request
	options int
	handler invoke.Handler
}

// recordingClient stands in for the SDK channel client
type recordingClient struct {
	calls   []call
	payload []byte
	err     error
}

func (c *recordingClient) Query(request channel.Request, options ...channel.RequestOption) (channel.Response, error) {
	c.calls = append(c.calls, call{method: "query", request: request, options: len(options)})
	return channel.Response{Payload: c.payload}, c.err
}

func (c *recordingClient) Execute(request channel.Request, options ...channel.RequestOption) (channel.Response, error) {
	c.calls = append(c.calls, call{method: "execute", request: request, options: len(options)})
	return channel.Response{Payload: c.payload}, c.err
}

func (c *recordingClient) InvokeHandler(handler invoke.Handler, request channel.Request, options ...channel.RequestOption) (channel.Response, error) {
	c.calls = append(c.calls, call{method: "invoke", request: request, options: len(options), handler: handler})
	return channel.Response{Payload: c.payload}, c.err
}

func newTestChannel(client channelClient, discovery bool) *fabChannel {
	return &fabChannel{
		name:      "mychannel",
		client:    client,
		orgPeers:  []string{"peer0.org1.example.com"},
		discovery: discovery,
	}
}

func TestChannelEvaluate(t *testing.T) {
	client := &recordingClient{payload: []byte("result")}
	ch := newTestChannel(client, true)

	assert.Equal(t, "mychannel", ch.Name())
	assert.Equal(t, []string{"peer0.org1.example.com"}, ch.OrgPeers())

	payload, err := ch.Evaluate(context.Background(), &ledger.Request{
		ChaincodeID:  "fabcar",
		Fcn:          "queryCar",
		Args:         [][]byte{[]byte("CAR1")},
		TransientMap: map[string][]byte{"price": []byte("8500")},
		Targets:      []string{"peer0.org1.example.com"},
		Timeout:      30 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, "result", string(payload))

	require.Len(t, client.calls, 1)
	assert.Equal(t, "query", client.calls[0].method)
	assert.Equal(t, channel.Request{
		ChaincodeID:  "fabcar",
		Fcn:          "queryCar",
		Args:         [][]byte{[]byte("CAR1")},
		TransientMap: map[string][]byte{"price": []byte("8500")},
	}, client.calls[0].request)
	// targets, timeout and parent context
	assert.Equal(t, 3, client.calls[0].options)
}

func TestChannelSubmit(t *testing.T) {
	client := &recordingClient{payload: []byte("ok")}
	ch := newTestChannel(client, true)

	payload, err := ch.Submit(context.Background(), &ledger.Request{
		ChaincodeID:    "fabcar",
		Fcn:            "createCar",
		CommitStrategy: "MSPID_SCOPE_ALLFORTX",
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(payload))

	require.Len(t, client.calls, 1)
	assert.Equal(t, "execute", client.calls[0].method)
	// only the parent context, discovery picks the endorsers
	assert.Equal(t, 1, client.calls[0].options)
}

func TestChannelWithoutDiscoveryTargetsOrgPeers(t *testing.T) {
	client := &recordingClient{}
	ch := newTestChannel(client, false)

	_, err := ch.Submit(context.Background(), &ledger.Request{
		ChaincodeID:    "fabcar",
		Fcn:            "createCar",
		CommitStrategy: "MSPID_SCOPE_ANYFORTX",
	})
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	// org peers and parent context
	assert.Equal(t, 2, client.calls[0].options)
}

func TestChannelSubmitWithoutCommitStrategy(t *testing.T) {
	client := &recordingClient{payload: []byte("ok")}
	ch := newTestChannel(client, true)

	payload, err := ch.Submit(context.Background(), &ledger.Request{
		ChaincodeID: "fabcar",
		Fcn:         "createCar",
		Timeout:     time.Minute,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(payload))

	require.Len(t, client.calls, 1)
	assert.Equal(t, "invoke", client.calls[0].method, "the commit wait is skipped")
	assert.NotNil(t, client.calls[0].handler)
	assert.Equal(t, channel.Request{ChaincodeID: "fabcar", Fcn: "createCar"}, client.calls[0].request)
	// timeout and parent context
	assert.Equal(t, 2, client.calls[0].options)
}

func TestChannelErrors(t *testing.T) {
	client := &recordingClient{err: errors.New("endorsement failure")}
	ch := newTestChannel(client, true)

	_, err := ch.Evaluate(context.Background(), &ledger.Request{})
	assert.EqualError(t, err, "endorsement failure")

	_, err = ch.Submit(context.Background(), &ledger.Request{CommitStrategy: "MSPID_SCOPE_ALLFORTX"})
	assert.EqualError(t, err, "endorsement failure")

	_, err = ch.Submit(context.Background(), &ledger.Request{})
	assert.EqualError(t, err, "endorsement failure")

	ch.Close()
}
