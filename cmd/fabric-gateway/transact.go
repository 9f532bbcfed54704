/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyperledger/fabric-gateway-go/pkg/gateway"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

var (
	flagTransient = &cli.StringSliceFlag{
		Name:  "transient",
		Usage: "Transient data as key=value, may be repeated",
	}
	flagEndorsers = &cli.StringSliceFlag{
		Name:  "endorser",
		Usage: "Peer to send the proposal to, may be repeated",
	}
)

var evaluateCommand = &cli.Command{
	Name:      "evaluate",
	Usage:     "Evaluate a transaction function and print the result",
	ArgsUsage: "<function> [args...]",
	Flags:     []cli.Flag{flagTransient, flagEndorsers},
	Action: func(cCtx *cli.Context) error {
		return transact(cCtx, (*gateway.Transaction).EvaluateWithContext)
	},
}

var submitCommand = &cli.Command{
	Name:      "submit",
	Usage:     "Submit a transaction to the ledger and print the result",
	ArgsUsage: "<function> [args...]",
	Flags:     []cli.Flag{flagTransient, flagEndorsers},
	Action: func(cCtx *cli.Context) error {
		return transact(cCtx, (*gateway.Transaction).SubmitWithContext)
	},
}

type invokeFunc func(txn *gateway.Transaction, ctx context.Context, args ...string) ([]byte, error)

func transact(cCtx *cli.Context, invoke invokeFunc) error {
	if cCtx.NArg() < 1 {
		return errors.New("a transaction function must be given")
	}
	v, err := loadSettings(cCtx)
	if err != nil {
		return err
	}

	transactionOpts, err := transactionOptions(cCtx)
	if err != nil {
		return err
	}

	gw, err := connect(cCtx.Context, v)
	if err != nil {
		return err
	}
	defer gw.Disconnect()

	channelName, err := requireSetting(v, channelSetting)
	if err != nil {
		return err
	}
	chaincode, err := requireSetting(v, chaincodeSetting)
	if err != nil {
		return err
	}

	network, err := gw.GetNetwork(cCtx.Context, channelName)
	if err != nil {
		return err
	}
	contract := network.GetContractWithName(chaincode, v.GetString(contractSetting))

	txn, err := contract.CreateTransaction(cCtx.Args().First(), transactionOpts...)
	if err != nil {
		return err
	}
	result, err := invoke(txn, cCtx.Context, cCtx.Args().Tail()...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, string(result))
	return nil
}

// connect opens a gateway with the profile, wallet and options in the settings
func connect(ctx context.Context, v *viper.Viper) (*gateway.Gateway, error) {
	profile, err := requireSetting(v, profileSetting)
	if err != nil {
		return nil, err
	}
	label, err := requireSetting(v, identitySetting)
	if err != nil {
		return nil, err
	}
	wallet, err := openWallet(v)
	if err != nil {
		return nil, err
	}

	options := []gateway.Option{
		gateway.WithIdentity(wallet, label),
		gateway.WithDiscovery(v.GetBool(discoverySetting)),
	}
	if optionsFile := v.GetString(optionsSetting); optionsFile != "" {
		options = append(options, gateway.WithOptionsFile(optionsFile))
	}

	if ctx == nil {
		ctx = context.Background()
	}
	return gateway.Connect(ctx, gateway.FromProfile(profile), options...)
}

func transactionOptions(cCtx *cli.Context) ([]gateway.TransactionOption, error) {
	var opts []gateway.TransactionOption

	if entries := cCtx.StringSlice(flagTransient.Name); len(entries) > 0 {
		transient, err := parseTransient(entries)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gateway.WithTransient(transient))
	}
	if peers := cCtx.StringSlice(flagEndorsers.Name); len(peers) > 0 {
		opts = append(opts, gateway.WithEndorsingPeers(peers...))
	}
	return opts, nil
}

func parseTransient(entries []string) (map[string][]byte, error) {
	transient := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf("invalid transient entry %q, expected key=value", entry)
		}
		transient[parts[0]] = []byte(parts[1])
	}
	return transient, nil
}
