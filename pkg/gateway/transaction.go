/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
	"github.com/pkg/errors"
)

// A Transaction represents a specific invocation of a transaction function, and provides
// flexibility over how that transaction is invoked. Applications should
// obtain instances of this class from a Contract using the
// Contract.CreateTransaction method.
//
// Instances of this class are stateful. A new instance <strong>must</strong>
// be created for each transaction invocation.
type Transaction struct {
	name           string
	contract       *Contract
	request        *ledger.Request
	endorsingPeers []string
}

// TransactionOption functional arguments can be supplied when creating a transaction object
type TransactionOption = func(*Transaction) error

func newTransaction(name string, contract *Contract, options ...TransactionOption) (*Transaction, error) {
	txn := &Transaction{
		name:     name,
		contract: contract,
		request:  &ledger.Request{ChaincodeID: contract.chaincodeID, Fcn: contract.function(name)},
	}

	for _, option := range options {
		err := option(txn)
		if err != nil {
			return nil, err
		}
	}

	return txn, nil
}

// WithTransient is an optional argument to the CreateTransaction method which
// sets the transient data that will be passed to the transaction function
// but will not be stored on the ledger. This can be used to pass
// private data to a transaction function.
func WithTransient(data map[string][]byte) TransactionOption {
	return func(txn *Transaction) error {
		txn.request.TransientMap = data
		return nil
	}
}

// WithEndorsingPeers is an optional argument to the CreateTransaction method which
// sets the peers that should be used for endorsement of transaction submitted to the ledger using Submit()
func WithEndorsingPeers(peers ...string) TransactionOption {
	return func(txn *Transaction) error {
		txn.endorsingPeers = peers
		return nil
	}
}

// Evaluate a transaction function and return its results.
// The transaction function will be evaluated on the endorsing peers but
// the responses will not be sent to the ordering service and hence will
// not be committed to the ledger. This can be used for querying the world state.
func (txn *Transaction) Evaluate(args ...string) ([]byte, error) {
	return txn.EvaluateWithContext(context.Background(), args...)
}

// EvaluateWithContext is Evaluate with a context that can cancel the request
func (txn *Transaction) EvaluateWithContext(ctx context.Context, args ...string) ([]byte, error) {
	network := txn.contract.network

	txn.request.Args = toBytes(args)
	txn.request.Timeout = network.handlers.Query.Timeout
	txn.request.Targets = txn.endorsingPeers
	if len(txn.request.Targets) == 0 && network.queryHandler != nil {
		txn.request.Targets = network.queryHandler.Targets()
	}

	response, err := network.channel.Evaluate(ctx, txn.request)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to evaluate")
	}

	return response, nil
}

// Submit a transaction to the ledger. The transaction function represented by this object
// will be evaluated on the endorsing peers and then submitted to the ordering service
// for committing to the ledger.
func (txn *Transaction) Submit(args ...string) ([]byte, error) {
	return txn.SubmitWithContext(context.Background(), args...)
}

// SubmitWithContext is Submit with a context that can cancel the request,
// including the wait for commit events
func (txn *Transaction) SubmitWithContext(ctx context.Context, args ...string) ([]byte, error) {
	network := txn.contract.network

	txn.request.Args = toBytes(args)
	txn.request.Timeout = network.handlers.Event.CommitTimeout
	txn.request.Targets = txn.endorsingPeers
	txn.request.CommitStrategy = ""
	if network.handlers.Event.Strategy != nil {
		txn.request.CommitStrategy = network.handlers.Event.Strategy.Name()
	}

	response, err := network.channel.Submit(ctx, txn.request)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to submit")
	}

	return response, nil
}

func toBytes(args []string) [][]byte {
	bytes := make([][]byte, len(args))
	for i, v := range args {
		bytes[i] = []byte(v)
	}
	return bytes
}
