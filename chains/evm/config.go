// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/omnimart-labs/omnimart-core/config"
	"github.com/omnimart-labs/omnimart-core/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	Marketplace      common.Address
	SpokePool        common.Address
	DelegateContract common.Address

	Tokens map[string]config.TokenConfig
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals" default:"18"`
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`

	Marketplace      string                    `mapstructure:"marketplace"`
	SpokePool        string                    `mapstructure:"spokePool"`
	DelegateContract string                    `mapstructure:"delegateContract"`
	Tokens           map[string]RawTokenConfig `mapstructure:"tokens"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.Marketplace == "" {
		return fmt.Errorf("required field chain.Marketplace empty for chain %v", *c.Id)
	}
	if c.DelegateContract == "" {
		return fmt.Errorf("required field chain.DelegateContract empty for chain %v", *c.Id)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	for symbol, raw := range c.Tokens {
		tokens[symbol] = config.TokenConfig{
			Address:  common.HexToAddress(raw.Address),
			Decimals: raw.Decimals,
		}
	}

	cfg := &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Marketplace:        common.HexToAddress(c.Marketplace),
		DelegateContract:   common.HexToAddress(c.DelegateContract),
		Tokens:             tokens,
	}
	if c.SpokePool != "" {
		cfg.SpokePool = common.HexToAddress(c.SpokePool)
	}

	return cfg, nil
}
