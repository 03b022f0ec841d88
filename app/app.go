// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/omnimart-labs/omnimart-core/api"
	"github.com/omnimart-labs/omnimart-core/api/handlers"
	"github.com/omnimart-labs/omnimart-core/cache"
	"github.com/omnimart-labs/omnimart-core/chains/evm"
	"github.com/omnimart-labs/omnimart-core/chains/evm/calls/contracts"
	"github.com/omnimart-labs/omnimart-core/chains/evm/signer"
	"github.com/omnimart-labs/omnimart-core/compose"
	"github.com/omnimart-labs/omnimart-core/config"
	"github.com/omnimart-labs/omnimart-core/delegation"
	"github.com/omnimart-labs/omnimart-core/executor"
	"github.com/omnimart-labs/omnimart-core/health"
	"github.com/omnimart-labs/omnimart-core/market"
	"github.com/omnimart-labs/omnimart-core/metrics"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/observability"
)

var Version string

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString("config-url")

	var configuration *config.Config
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logLevel, err := zerolog.ParseLevel(configuration.ServiceConfig.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	key := viper.GetString(config.KeyFlagName)
	if key == "" {
		key = configuration.ServiceConfig.Key
	}
	privKey, err := crypto.HexToECDSA(strings.TrimPrefix(key, "0x"))
	panicOnError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mp, err := observability.InitMetricProvider(ctx, configuration.ServiceConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	txMetrics, err := metrics.NewTransactionMetrics(
		ctx,
		mp.Meter("market-metric-provider"),
		metric.WithAttributes(
			attribute.String("env", configuration.ServiceConfig.Env),
			attribute.String("id", configuration.ServiceConfig.Id),
			attribute.String("version", Version),
		))
	panicOnError(err)

	marketplaces := make(map[uint64]common.Address)
	spokePools := make(map[uint64]common.Address)
	nonceReaders := make(map[uint64]signer.NonceReader)
	configuredChains := make(map[uint64]struct{})
	tokenStore := &config.TokenStore{Tokens: make(map[uint64]map[string]config.TokenConfig)}
	var delegateContract common.Address

	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				cfg, err := evm.NewEVMConfig(chainConfig)
				panicOnError(err)

				client, err := evmClient.NewEVMClient(cfg.GeneralChainConfig.Endpoint, nil)
				panicOnError(err)

				chainID := *cfg.GeneralChainConfig.Id
				log.Info().Uint64("chain", chainID).Msgf("Registering EVM chain")

				marketplaces[chainID] = cfg.Marketplace
				if cfg.SpokePool != (common.Address{}) {
					spokePools[chainID] = cfg.SpokePool
				}
				nonceReaders[chainID] = contracts.NewDelegatorContract(client, cfg.DelegateContract)
				tokenStore.Tokens[chainID] = cfg.Tokens
				configuredChains[chainID] = struct{}{}

				// the delegate designator deploys to the same address
				// everywhere
				delegateContract = cfg.DelegateContract
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	localSigner := signer.NewLocalSigner(privKey, nonceReaders)
	owner := localSigner.Address()
	resolver := delegation.NewDelegatedResolver(owner)

	sessionStore := cache.NewSessionStore()
	defer sessionStore.Stop()

	chainIDs := make([]uint64, 0, len(configuredChains))
	for id := range configuredChains {
		chainIDs = append(chainIDs, id)
	}
	manager := delegation.NewManager(owner, delegateContract, chainIDs, localSigner, sessionStore)

	relay := mee.NewClient(configuration.ServiceConfig.RelayConfig.Url, configuration.ServiceConfig.RelayConfig.ApiKey)
	servable, err := relay.GetSupportedChains(ctx)
	panicOnError(err)
	log.Info().Msgf("Relay serves %d chains", len(servable))

	go health.StartHealthEndpoint(configuration.ServiceConfig.HealthPort, func() error {
		_, err := relay.GetSupportedChains(context.Background())
		return err
	})

	tracker := executor.NewStatusTracker()
	exec := executor.NewExecutor(relay, manager, localSigner, tracker)
	reporter := executor.NewReporter(configuration.ServiceConfig.RelayConfig.ExplorerUrl)

	bridge := compose.NewBridgeBuilder(spokePools, tokenStore)
	composer := compose.NewComposer(marketplaces, bridge)
	service := market.NewService(composer, exec, reporter, txMetrics, resolver, servable)

	marketHandler := handlers.NewMarketHandler(service, configuredChains, configuration.ServiceConfig.UseUniversalAuthorizations)
	statusHandler := handlers.NewStatusHandler(tracker)
	go api.Serve(ctx, fmt.Sprintf(":%d", configuration.ServiceConfig.ApiPort), marketHandler, statusHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started market service %s for %s. Version: v%s", configuration.ServiceConfig.Id, owner.Hex(), Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
