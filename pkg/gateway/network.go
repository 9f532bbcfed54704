/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"sync"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/providers/ledger"
)

// A Network object represents the set of peers in a Fabric network (channel).
// Applications should get a Network instance from a Gateway using the GetNetwork method.
type Network struct {
	name         string
	gateway      *Gateway
	channel      ledger.Channel
	handlers     *handlerOptions
	queryHandler QueryHandler

	mutex     sync.Mutex
	contracts map[string]*Contract
}

func newNetwork(gateway *Gateway, channel ledger.Channel, handlers *handlerOptions) *Network {
	n := &Network{
		name:      channel.Name(),
		gateway:   gateway,
		channel:   channel,
		handlers:  handlers,
		contracts: make(map[string]*Contract),
	}
	if handlers.Query.Strategy != nil {
		n.queryHandler = handlers.Query.Strategy.Create(channel.OrgPeers())
	}
	return n
}

// Name is the name of the network (also known as channel name)
func (n *Network) Name() string {
	return n.name
}

// Gateway returns the gateway the network was obtained from
func (n *Network) Gateway() *Gateway {
	return n.gateway
}

// GetContract returns instance of a smart contract on the current network.
//  Parameters:
//  chaincodeID is the name of the chaincode that contains the smart contract
//
//  Returns:
//  A Contract object representing the smart contract
func (n *Network) GetContract(chaincodeID string) *Contract {
	return n.GetContractWithName(chaincodeID, "")
}

// GetContractWithName returns instance of a smart contract on the current network.
// If the chaincode instance contains more than one smart contract class (available using the latest chaincode
// programming model), then an individual class can be selected.
//  Parameters:
//  chaincodeID is the name of the chaincode that contains the smart contract
//  name is the class name of the smart contract within the chaincode.
//
//  Returns:
//  A Contract object representing the smart contract
func (n *Network) GetContractWithName(chaincodeID string, name string) *Contract {
	key := chaincodeID + ":" + name

	n.mutex.Lock()
	defer n.mutex.Unlock()

	contract, ok := n.contracts[key]
	if !ok {
		contract = newContract(n, chaincodeID, name)
		n.contracts[key] = contract
	}
	return contract
}

func (n *Network) close() {
	logger.Debugf("Closing network [%s]", n.name)
	n.channel.Close()
}
