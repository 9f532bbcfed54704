/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nw := newTestNetwork(t, newMockChannel(ctrl, "mychannel"))
	contr := nw.GetContract("contract1")

	txn, err := contr.CreateTransaction("txn1")
	require.NoError(t, err)
	assert.Equal(t, "txn1", txn.name)
	assert.Equal(t, "contract1", txn.request.ChaincodeID)
	assert.Equal(t, "txn1", txn.request.Fcn)
}

func TestCreateTransactionOnNamedContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nw := newTestNetwork(t, newMockChannel(ctrl, "mychannel"))
	contr := nw.GetContractWithName("contract1", "class1")

	txn, err := contr.CreateTransaction("txn1")
	require.NoError(t, err)
	assert.Equal(t, "class1:txn1", txn.request.Fcn)
}

func TestEvaluateTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := newMockChannel(ctrl, "mychannel", "peer0")
	channel.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, request *ledger.Request) ([]byte, error) {
			assert.Equal(t, "contract1", request.ChaincodeID)
			assert.Equal(t, "txn1", request.Fcn)
			assert.Equal(t, [][]byte{[]byte("arg1"), []byte("arg2")}, request.Args)
			return []byte("result"), nil
		})

	nw := newTestNetwork(t, channel)
	result, err := nw.GetContract("contract1").EvaluateTransaction("txn1", "arg1", "arg2")
	require.NoError(t, err)
	assert.Equal(t, "result", string(result))
}

func TestSubmitTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := newMockChannel(ctrl, "mychannel", "peer0")
	channel.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, request *ledger.Request) ([]byte, error) {
			assert.Equal(t, "txn1", request.Fcn)
			assert.Equal(t, [][]byte{[]byte("arg1")}, request.Args)
			return []byte("submitted"), nil
		})

	nw := newTestNetwork(t, channel)
	result, err := nw.GetContract("contract1").SubmitTransaction("txn1", "arg1")
	require.NoError(t, err)
	assert.Equal(t, "submitted", string(result))
}

func TestContractAccessors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nw := newTestNetwork(t, newMockChannel(ctrl, "mychannel"))

	plain := nw.GetContract("fabcar")
	assert.Equal(t, "fabcar", plain.Name())
	assert.Equal(t, "fabcar", plain.ChaincodeID())
	assert.Same(t, nw, plain.Network())

	named := nw.GetContractWithName("fabcar", "org.example.cars")
	assert.Equal(t, "fabcar:org.example.cars", named.Name())
	assert.Equal(t, "fabcar", named.ChaincodeID())
}
