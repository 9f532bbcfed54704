/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fabclient implements the ledger client used by gateways on top of
// the Fabric SDK.
//
//  The SDK instance is created when the first channel is opened, so that
//  connection options and TLS credentials supplied while a gateway connects
//  are part of the SDK configuration.
package fabclient
