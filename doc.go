/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fabricgateway enables Go developers to build client applications
// using the Hyperledger Fabric programming model.
//
// Packages for end developer usage
//
// pkg/gateway: Connects to a network with an identity from a wallet and gives
// access to networks (channels), contracts and transactions. Networks are
// built once per channel and shared by concurrent callers.
//
// pkg/fabclient: The default ledger client, built on the Fabric SDK. Gateways
// use it when they connect with a connection profile.
//
// cmd/fabric-gateway: Command line client to manage wallets and to evaluate
// or submit transactions.
//
// Basic workflow
//
//      1) Store an identity in a wallet (file system, in-memory or Vault).
//      2) Connect a gateway with a connection profile, the wallet and a label.
//         Options are merged over the gateway defaults.
//      3) Get the network for a channel and the contract for a chaincode.
//      4) Evaluate or submit transactions.
//      5) Call Disconnect to release the networks and the client.
//
package fabricgateway
