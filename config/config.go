// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceConfig ServiceConfig            `mapstructure:"service" json:"service"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

type ServiceConfig struct {
	LogLevel   string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	Env        string `mapstructure:"env" json:"env" default:"dev"`
	Id         string `mapstructure:"id" json:"id"`
	ApiPort    uint16 `mapstructure:"apiPort" json:"apiPort" default:"8080"`
	HealthPort uint16 `mapstructure:"healthPort" json:"healthPort" default:"9001"`

	// hex-encoded private key backing the local signer
	Key string `mapstructure:"key" json:"key"`

	UseUniversalAuthorizations bool `mapstructure:"useUniversalAuthorizations" json:"useUniversalAuthorizations" default:"true"`

	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`

	RelayConfig RelayConfig `mapstructure:"relay" json:"relay"`
}

type RelayConfig struct {
	Url         string `mapstructure:"url" json:"url"`
	ApiKey      string `mapstructure:"apiKey" json:"apiKey"`
	ExplorerUrl string `mapstructure:"explorerUrl" json:"explorerUrl"`
	Sponsorship bool   `mapstructure:"sponsorship" json:"sponsorship"`
}

func (c *ServiceConfig) Validate() error {
	if c.RelayConfig.Url == "" {
		return fmt.Errorf("required field service.relay.url empty")
	}
	if c.Key == "" {
		return fmt.Errorf("required field service.key empty")
	}
	return nil
}

// GetConfigFromFile reads the config file, overlays it onto base and
// applies defaults.
func GetConfigFromFile(path string, base *Config) (*Config, error) {
	config := &Config{}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return config, err
	}

	if err := v.Unmarshal(config); err != nil {
		return config, err
	}

	return finalize(config, base)
}

// GetConfigFromENV builds the config from OMNIMART_* environment
// variables overlaid onto base.
func GetConfigFromENV(base *Config) (*Config, error) {
	config := &Config{}

	v := viper.New()
	v.SetEnvPrefix("OMNIMART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"service.logLevel", "service.env", "service.id",
		"service.apiPort", "service.healthPort", "service.key",
		"service.useUniversalAuthorizations",
		"service.openTelemetryCollectorURL",
		"service.relay.url", "service.relay.apiKey",
		"service.relay.explorerUrl", "service.relay.sponsorship",
	} {
		if err := v.BindEnv(key); err != nil {
			return config, err
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return config, err
	}

	return finalize(config, base)
}

// GetSharedConfigFromNetwork fetches shared deployment config
// (chains, marketplace and bridge addresses) as plain JSON. Local
// file or env config is overlaid on top of it.
func GetSharedConfigFromNetwork(url string) (*Config, error) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	config := &Config{}
	if err := json.Unmarshal(body, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return config, nil
}

func finalize(config *Config, base *Config) (*Config, error) {
	if base != nil {
		if err := mergo.Merge(config, base); err != nil {
			return config, err
		}
	}

	if err := defaults.Set(config); err != nil {
		return config, err
	}

	if err := config.ServiceConfig.Validate(); err != nil {
		return config, err
	}

	return config, nil
}
