// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName = "config"
	KeyFlagName    = "key"
)

func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlagName, "env", "path to the config file, or 'env' to configure from environment variables")
	_ = viper.BindPFlag(ConfigFlagName, cmd.PersistentFlags().Lookup(ConfigFlagName))

	cmd.PersistentFlags().String(KeyFlagName, "", "hex-encoded signer private key, overrides the config value")
	_ = viper.BindPFlag(KeyFlagName, cmd.PersistentFlags().Lookup(KeyFlagName))
}
