/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// fabric-gateway manages wallet identities and invokes transaction
// functions through a gateway.
package main

import (
	"os"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/logging"
	"github.com/urfave/cli/v2"
)

var logger = logging.NewLogger("fabgateway/cmd")

func newApp() *cli.App {
	return &cli.App{
		Name:  "fabric-gateway",
		Usage: "Fabric gateway command line client",
		Flags: append([]cli.Flag{flagConfig}, settingFlags...),
		Commands: []*cli.Command{
			walletCommand,
			evaluateCommand,
			submitCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}
