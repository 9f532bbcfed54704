/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

// Contract is a smart contract deployed to a network. A chaincode may hold
// several named contracts. Get one with Network.GetContract or
// Network.GetContractWithName.
type Contract struct {
	chaincodeID string
	name        string
	network     *Network
}

func newContract(network *Network, chaincodeID string, name string) *Contract {
	return &Contract{network: network, chaincodeID: chaincodeID, name: name}
}

// Name returns the chaincode ID, qualified with the contract name for
// named contracts (chaincodeID:name)
func (c *Contract) Name() string {
	if c.name == "" {
		return c.chaincodeID
	}
	return c.chaincodeID + ":" + c.name
}

// ChaincodeID returns the ID of the chaincode holding the contract
func (c *Contract) ChaincodeID() string {
	return c.chaincodeID
}

// Network returns the network the contract belongs to
func (c *Contract) Network() *Network {
	return c.network
}

// function returns the chaincode function that invokes the named
// transaction of this contract
func (c *Contract) function(transaction string) string {
	if c.name == "" {
		return transaction
	}
	return c.name + ":" + transaction
}

// EvaluateTransaction runs a transaction function on a peer and returns its
// result. The result is not sent for ordering, so the ledger is unchanged.
// Use it to query the world state.
func (c *Contract) EvaluateTransaction(name string, args ...string) ([]byte, error) {
	txn, err := c.CreateTransaction(name)
	if err != nil {
		return nil, err
	}
	return txn.Evaluate(args...)
}

// SubmitTransaction endorses a transaction function, sends it for ordering
// and waits for commit as the gateway's commit handler says. It returns the
// result of the function.
func (c *Contract) SubmitTransaction(name string, args ...string) ([]byte, error) {
	txn, err := c.CreateTransaction(name)
	if err != nil {
		return nil, err
	}
	return txn.Submit(args...)
}

// CreateTransaction prepares a single invocation of a transaction function.
// Options set transient data or the endorsing peers.
func (c *Contract) CreateTransaction(name string, opts ...TransactionOption) (*Transaction, error) {
	return newTransaction(name, c, opts...)
}
