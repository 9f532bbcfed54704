/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"strings"

	"github.com/hashicorp/vault/api"
	"github.com/hyperledger/fabric-gateway-go/pkg/common/logging"
	"github.com/hyperledger/fabric-gateway-go/pkg/gateway"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const envPrefix = "FABRIC_GATEWAY"

// setting keys, also the names of the flags that override them
const (
	profileSetting     = "profile"
	walletTypeSetting  = "wallet.type"
	walletPathSetting  = "wallet.path"
	vaultAddrSetting   = "vault.address"
	vaultTokenSetting  = "vault.token"
	identitySetting    = "identity"
	optionsSetting     = "options"
	logLevelSetting    = "logging.level"
	channelSetting     = "channel"
	chaincodeSetting   = "chaincode"
	contractSetting    = "contract"
	discoverySetting   = "discovery"
	configFileFlagName = "config"
)

var (
	flagConfig = &cli.StringFlag{
		Name:  configFileFlagName,
		Usage: "Path to a settings file (YAML, JSON or TOML)",
	}
	flagProfile = &cli.StringFlag{
		Name:  "profile",
		Usage: "Path to the connection profile",
	}
	flagWalletType = &cli.StringFlag{
		Name:  "wallet-type",
		Usage: "Wallet store: file, vault or memory",
	}
	flagWalletPath = &cli.StringFlag{
		Name:  "wallet",
		Usage: "Wallet directory, or secret path for a vault wallet",
	}
	flagVaultAddr = &cli.StringFlag{
		Name:  "vault-addr",
		Usage: "Vault server address",
	}
	flagVaultToken = &cli.StringFlag{
		Name:  "vault-token",
		Usage: "Vault token",
	}
	flagIdentity = &cli.StringFlag{
		Name:    "identity",
		Aliases: []string{"label"},
		Usage:   "Wallet label of the identity",
	}
	flagOptions = &cli.StringFlag{
		Name:  "options",
		Usage: "Path to a YAML file of gateway options",
	}
	flagLogLevel = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warning, error or critical",
	}
	flagChannel = &cli.StringFlag{
		Name:  "channel",
		Usage: "Channel name",
	}
	flagChaincode = &cli.StringFlag{
		Name:  "chaincode",
		Usage: "Chaincode ID",
	}
	flagContract = &cli.StringFlag{
		Name:  "contract",
		Usage: "Contract name within the chaincode",
	}
	flagDiscovery = &cli.BoolFlag{
		Name:  "discovery",
		Usage: "Use service discovery",
		Value: true,
	}
)

// settingFlags override the setting of the same meaning in flagSettings
var settingFlags = []cli.Flag{
	flagProfile,
	flagWalletType,
	flagWalletPath,
	flagVaultAddr,
	flagVaultToken,
	flagIdentity,
	flagOptions,
	flagLogLevel,
	flagChannel,
	flagChaincode,
	flagContract,
	flagDiscovery,
}

var flagSettings = map[string]string{
	flagProfile.Name:    profileSetting,
	flagWalletType.Name: walletTypeSetting,
	flagWalletPath.Name: walletPathSetting,
	flagVaultAddr.Name:  vaultAddrSetting,
	flagVaultToken.Name: vaultTokenSetting,
	flagIdentity.Name:   identitySetting,
	flagOptions.Name:    optionsSetting,
	flagLogLevel.Name:   logLevelSetting,
	flagChannel.Name:    channelSetting,
	flagChaincode.Name:  chaincodeSetting,
	flagContract.Name:   contractSetting,
	flagDiscovery.Name:  discoverySetting,
}

var logModules = []string{
	"fabgateway/cmd",
	"fabgateway/gateway",
	"fabgateway/fabclient",
	"fabgateway/util",
}

// newSettings reads the optional settings file. Environment variables such
// as FABRIC_GATEWAY_WALLET_PATH override it.
func newSettings(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault(walletTypeSetting, "file")
	v.SetDefault(walletPathSetting, "wallet")
	v.SetDefault(logLevelSetting, "info")
	v.SetDefault(discoverySetting, true)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read settings from %s", configFile)
		}
	}
	return v, nil
}

// loadSettings builds the settings for a command and applies flags set on
// the command line over them
func loadSettings(cCtx *cli.Context) (*viper.Viper, error) {
	v, err := newSettings(cCtx.String(configFileFlagName))
	if err != nil {
		return nil, err
	}
	for _, flag := range settingFlags {
		name := flag.Names()[0]
		if cCtx.IsSet(name) {
			v.Set(flagSettings[name], cCtx.Value(name))
		}
	}

	level, err := logging.LogLevel(v.GetString(logLevelSetting))
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	for _, module := range logModules {
		logging.SetLevel(module, level)
	}
	return v, nil
}

// openWallet opens the wallet named by the settings
func openWallet(v *viper.Viper) (*gateway.Wallet, error) {
	switch walletType := v.GetString(walletTypeSetting); walletType {
	case "file":
		return gateway.NewFileSystemWallet(v.GetString(walletPathSetting))
	case "memory":
		return gateway.NewInMemoryWallet(), nil
	case "vault":
		var cfg *api.Config
		if address := v.GetString(vaultAddrSetting); address != "" {
			cfg = api.DefaultConfig()
			cfg.Address = address
		}
		return gateway.NewVaultWallet(v.GetString(walletPathSetting), v.GetString(vaultTokenSetting), cfg)
	default:
		return nil, errors.Errorf("unknown wallet type: %s", walletType)
	}
}

func requireSetting(v *viper.Viper, key string) (string, error) {
	value := v.GetString(key)
	if value == "" {
		return "", errors.Errorf("%s must be set, or %s_%s", key, envPrefix, strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	}
	return value, nil
}
