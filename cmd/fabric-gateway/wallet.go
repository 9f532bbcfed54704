/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/hyperledger/fabric-gateway-go/pkg/gateway"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var (
	flagMSP = &cli.StringFlag{
		Name:     "msp",
		Usage:    "MSP ID of the identity",
		Required: true,
	}
	flagCertFile = &cli.StringFlag{
		Name:     "cert",
		Usage:    "Path to the PEM encoded certificate",
		Required: true,
	}
	flagKeyFile = &cli.StringFlag{
		Name:  "key",
		Usage: "Path to the PEM encoded private key",
	}
	flagHSM = &cli.BoolFlag{
		Name:  "hsm",
		Usage: "Store an HSM-X.509 identity, the private key stays in the HSM",
	}
)

var walletCommand = &cli.Command{
	Name:  "wallet",
	Usage: "Manage wallet identities",
	Subcommands: []*cli.Command{
		{
			Name:      "import",
			Usage:     "Store an identity under a label",
			ArgsUsage: "<label>",
			Flags:     []cli.Flag{flagMSP, flagCertFile, flagKeyFile, flagHSM},
			Action:    importIdentity,
		},
		{
			Name:   "list",
			Usage:  "List wallet labels",
			Action: listIdentities,
		},
		{
			Name:      "show",
			Usage:     "Print an identity without its private key",
			ArgsUsage: "<label>",
			Action:    showIdentity,
		},
		{
			Name:      "remove",
			Usage:     "Remove an identity",
			ArgsUsage: "<label>",
			Action:    removeIdentity,
		},
	},
}

func walletForCommand(cCtx *cli.Context) (*gateway.Wallet, error) {
	v, err := loadSettings(cCtx)
	if err != nil {
		return nil, err
	}
	wallet, err := openWallet(v)
	if err != nil {
		return nil, err
	}
	// HSM identities can be listed and removed without PKCS#11 settings
	wallet.ProviderRegistry().AddProvider(gateway.NewHSMX509Provider(gateway.HSMOptions{}))
	return wallet, nil
}

func labelArg(cCtx *cli.Context) (string, error) {
	if cCtx.NArg() != 1 {
		return "", errors.New("exactly one label must be given")
	}
	return cCtx.Args().First(), nil
}

func importIdentity(cCtx *cli.Context) error {
	label, err := labelArg(cCtx)
	if err != nil {
		return err
	}
	wallet, err := walletForCommand(cCtx)
	if err != nil {
		return err
	}

	cert, err := os.ReadFile(cCtx.String(flagCertFile.Name))
	if err != nil {
		return errors.Wrap(err, "failed to read certificate")
	}

	var id gateway.Identity
	if cCtx.Bool(flagHSM.Name) {
		id = gateway.NewHSMX509Identity(cCtx.String(flagMSP.Name), string(cert))
	} else {
		keyFile := cCtx.String(flagKeyFile.Name)
		if keyFile == "" {
			return errors.New("--key is required unless --hsm is set")
		}
		key, err := os.ReadFile(keyFile)
		if err != nil {
			return errors.Wrap(err, "failed to read private key")
		}
		id = gateway.NewX509Identity(cCtx.String(flagMSP.Name), string(cert), string(key))
	}

	if err := wallet.Put(label, id); err != nil {
		return err
	}
	logger.Infof("stored %s identity %s", id.Type(), label)
	return nil
}

func listIdentities(cCtx *cli.Context) error {
	wallet, err := walletForCommand(cCtx)
	if err != nil {
		return err
	}
	labels, err := wallet.List()
	if err != nil {
		return err
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintln(cCtx.App.Writer, label)
	}
	return nil
}

type identitySummary struct {
	Label       string `json:"label"`
	Type        string `json:"type"`
	MspID       string `json:"mspId"`
	Certificate string `json:"certificate,omitempty"`
}

func showIdentity(cCtx *cli.Context) error {
	label, err := labelArg(cCtx)
	if err != nil {
		return err
	}
	wallet, err := walletForCommand(cCtx)
	if err != nil {
		return err
	}
	id, err := wallet.Get(label)
	if err != nil {
		return err
	}

	summary := identitySummary{Label: label, Type: id.Type(), MspID: id.MspID()}
	if withCert, ok := id.(interface{ Certificate() string }); ok {
		summary.Certificate = withCert.Certificate()
	}
	encoder := json.NewEncoder(cCtx.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func removeIdentity(cCtx *cli.Context) error {
	label, err := labelArg(cCtx)
	if err != nil {
		return err
	}
	wallet, err := walletForCommand(cCtx)
	if err != nil {
		return err
	}
	if err := wallet.Remove(label); err != nil {
		return err
	}
	logger.Infof("removed identity %s", label)
	return nil
}
