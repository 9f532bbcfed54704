/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func Example() {
	// A wallet existing in the 'wallet' folder
	wallet, err := NewFileSystemWallet("wallet")
	if err != nil {
		fmt.Printf("Failed to create wallet: %s\n", err)
		os.Exit(1)
	}

	// Path to the network config (CCP) file
	ccpPath := filepath.Join(
		"..",
		"connection-org1.yaml",
	)

	// Connect to the gateway peer(s) using the network config and identity in the wallet
	gw, err := Connect(
		context.Background(),
		FromProfile(filepath.Clean(ccpPath)),
		WithIdentity(wallet, "appUser"),
	)
	if err != nil {
		fmt.Printf("Failed to connect to gateway: %s\n", err)
		os.Exit(1)
	}
	defer gw.Disconnect()

	// Get the network channel 'mychannel'
	network, err := gw.GetNetwork(context.Background(), "mychannel")
	if err != nil {
		fmt.Printf("Failed to get network: %s\n", err)
		os.Exit(1)
	}

	// Get the smart contract 'fabcar'
	contract := network.GetContract("fabcar")

	// Submit a transaction in that contract to the ledger
	result, err := contract.SubmitTransaction("createCar", "CAR10", "VW", "Polo", "Grey", "Mary")
	if err != nil {
		fmt.Printf("Failed to submit transaction: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(result))
}

func ExampleGateway_Connect() {
	wallet := NewInMemoryWallet()
	if err := wallet.Put("appUser", NewX509Identity("Org1MSP", "--cert--", "--key--")); err != nil {
		fmt.Printf("Failed to populate wallet: %s\n", err)
		os.Exit(1)
	}

	// An unconnected gateway can be connected later, and reconnected
	gw := New()
	err := gw.Connect(
		context.Background(),
		FromProfile("connection-org1.yaml"),
		WithIdentity(wallet, "appUser"),
		WithCommitHandler(DefaultCommitHandlers.OrgAny),
		WithCommitTimeout(2*time.Minute),
		WithQueryHandler(DefaultQueryHandlers.OrgRoundRobin),
		WithDiscovery(false),
	)
	if err != nil {
		fmt.Printf("Failed to connect to gateway: %s\n", err)
		os.Exit(1)
	}
	defer gw.Disconnect()
}

func ExampleWithOptionsFile() {
	// gateway.yaml:
	//   identity: appUser
	//   eventHandlerOptions:
	//     strategy: NETWORK_SCOPE_ALLFORTX
	//     commitTimeout: 60
	//   queryHandlerOptions:
	//     timeout: 5s
	wallet, err := NewFileSystemWallet("wallet")
	if err != nil {
		fmt.Printf("Failed to create wallet: %s\n", err)
		os.Exit(1)
	}

	gw, err := Connect(
		context.Background(),
		FromProfile("connection-org1.yaml"),
		WithWallet(wallet),
		WithOptionsFile("gateway.yaml"),
	)
	if err != nil {
		fmt.Printf("Failed to connect to gateway: %s\n", err)
		os.Exit(1)
	}
	defer gw.Disconnect()
}

func ExampleContract_CreateTransaction() {
	gw, err := Connect(
		context.Background(),
		FromProfile("connection-org1.yaml"),
		WithX509Identity("Org1MSP", "--cert--", "--key--"),
	)
	if err != nil {
		fmt.Printf("Failed to connect to gateway: %s\n", err)
		os.Exit(1)
	}
	defer gw.Disconnect()

	network, err := gw.GetNetwork(context.Background(), "mychannel")
	if err != nil {
		fmt.Printf("Failed to get network: %s\n", err)
		os.Exit(1)
	}

	contract := network.GetContract("marbles")

	transient := make(map[string][]byte)
	transient["price"] = []byte("8500")

	txn, err := contract.CreateTransaction(
		"initMarble",
		WithTransient(transient),
		WithEndorsingPeers("peer1.org1.example.com:8051"),
	)
	if err != nil {
		fmt.Printf("Failed to create transaction: %s\n", err)
		os.Exit(1)
	}

	result, err := txn.Submit("marble1", "blue", "50", "tom")
	if err != nil {
		fmt.Printf("Failed to submit transaction: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(result))
}

func ExampleNewVaultWallet() {
	// Identities are stored as KV version 2 secrets under secret/data/fabric/wallet
	wallet, err := NewVaultWallet("fabric/wallet", os.Getenv("VAULT_TOKEN"), nil)
	if err != nil {
		fmt.Printf("Failed to create wallet: %s\n", err)
		os.Exit(1)
	}

	labels, err := wallet.List()
	if err != nil {
		fmt.Printf("Failed to list wallet: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(labels)
}
