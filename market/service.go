package market

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/compose"
	"github.com/omnimart-labs/omnimart-core/delegation"
	"github.com/omnimart-labs/omnimart-core/executor"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
	"github.com/rs/zerolog/log"
)

// Composer builds the per-chain instruction list for one request
// shape.
type Composer interface {
	ComposeList(p compose.ListingParams) ([]mee.Instruction, error)
	ComposeSameChainBuy(p compose.BuyParams) ([]mee.Instruction, error)
	ComposeCrossChainBuy(p compose.CrossChainBuyParams) ([]mee.Instruction, error)
	ComposeBatchBuy(items []compose.BuyParams) ([]mee.Instruction, error)
	ComposeCancel(chainID uint64, listingID *big.Int) ([]mee.Instruction, error)
}

// Runner executes a composed bundle through the relay.
type Runner interface {
	Execute(ctx context.Context, id string, instructions []mee.Instruction, opts executor.ExecutionOptions) (*mee.Receipt, error)
}

type Metrics interface {
	TrackStart(id string)
	TrackOutcome(id string, status executor.Status)
}

// Service is the public surface. Every operation runs one sequential
// pipeline and returns the result envelope; errors never propagate to
// the caller.
type Service struct {
	composer Composer
	runner   Runner
	reporter *executor.Reporter
	metrics  Metrics
	resolver delegation.AddressResolver

	// chains the relay reported as servable at startup
	servable map[uint64]struct{}
}

func NewService(
	composer Composer,
	runner Runner,
	reporter *executor.Reporter,
	metrics Metrics,
	resolver delegation.AddressResolver,
	servableChains []uint64,
) *Service {
	servable := make(map[uint64]struct{})
	for _, id := range servableChains {
		servable[id] = struct{}{}
	}

	return &Service{
		composer: composer,
		runner:   runner,
		reporter: reporter,
		metrics:  metrics,
		resolver: resolver,
		servable: servable,
	}
}

func (s *Service) List(ctx context.Context, p compose.ListingParams, opts executor.ExecutionOptions) *executor.TransactionResult {
	instructions, err := s.composer.ComposeList(p)
	if err != nil {
		return s.failed([]uint64{p.ChainID}, err)
	}

	return s.run(ctx, instructions, opts)
}

func (s *Service) Buy(ctx context.Context, p compose.CrossChainBuyParams, opts executor.ExecutionOptions) *executor.TransactionResult {
	if p.Buyer == (common.Address{}) {
		// delegated mode: the execution address is the identity
		// address on every chain
		p.Buyer = s.resolver.AddressOn(p.PaymentChainID)
	}

	instructions, err := s.composer.ComposeCrossChainBuy(p)
	if err != nil {
		return s.failed([]uint64{p.PaymentChainID, p.ChainID}, err)
	}

	return s.run(ctx, instructions, opts)
}

func (s *Service) BuyBatch(ctx context.Context, items []compose.BuyParams, opts executor.ExecutionOptions) *executor.TransactionResult {
	instructions, err := s.composer.ComposeBatchBuy(items)
	if err != nil {
		chains := make([]uint64, 0, len(items))
		for _, item := range items {
			chains = append(chains, item.ChainID)
		}
		return s.failed(chains, err)
	}

	return s.run(ctx, instructions, opts)
}

func (s *Service) Cancel(ctx context.Context, chainID uint64, listingID *big.Int, opts executor.ExecutionOptions) *executor.TransactionResult {
	instructions, err := s.composer.ComposeCancel(chainID, listingID)
	if err != nil {
		return s.failed([]uint64{chainID}, err)
	}

	return s.run(ctx, instructions, opts)
}

func (s *Service) run(ctx context.Context, instructions []mee.Instruction, opts executor.ExecutionOptions) *executor.TransactionResult {
	chainIDs := mee.ChainIDs(instructions)
	if err := s.validateServable(chainIDs); err != nil {
		return s.failed(chainIDs, err)
	}

	id := opts.TrackingID
	if id == "" {
		id = trackingID()
		opts.TrackingID = id
	}
	s.metrics.TrackStart(id)

	receipt, err := s.runner.Execute(ctx, id, instructions, opts)
	result := s.reporter.Report(receipt, chainIDs, err)
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msgf("Supertransaction did not complete")
	}

	s.metrics.TrackOutcome(id, result.Status)
	return result
}

// validateServable rejects chains the relay cannot serve before any
// signing prompt or network call.
func (s *Service) validateServable(chainIDs []uint64) error {
	for _, id := range chainIDs {
		if _, ok := s.servable[id]; !ok {
			return &compose.UnsupportedChainError{ChainID: id}
		}
	}
	return nil
}

func (s *Service) failed(chainIDs []uint64, err error) *executor.TransactionResult {
	log.Warn().Err(err).Msgf("Rejected before submission")
	result := s.reporter.Report(nil, chainIDs, err)

	id := trackingID()
	s.metrics.TrackStart(id)
	s.metrics.TrackOutcome(id, result.Status)
	return result
}

func trackingID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
