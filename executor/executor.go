package executor

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
	"github.com/rs/zerolog/log"
)

// Relayer is the execution relay consumed by the orchestrator.
type Relayer interface {
	GetQuote(ctx context.Context, qr *mee.QuoteRequest) (*mee.Quote, error)
	ExecuteQuote(ctx context.Context, q *mee.Quote) (common.Hash, error)
	WaitForReceipt(ctx context.Context, hash common.Hash) (*mee.Receipt, error)
}

// Authorizer resolves and validates the delegation grants backing a
// bundle.
type Authorizer interface {
	GetOrSign(ctx context.Context, useUniversal bool) (mee.AuthorizationSet, error)
	ValidateCoverage(set mee.AuthorizationSet, requiredChainIDs []uint64) error
}

// ExecutionSigner collects the user's signature over the quote hash.
type ExecutionSigner interface {
	SignQuote(ctx context.Context, q *mee.Quote) error
}

type ExecutionOptions struct {
	UseUniversal bool
	Sponsorship  bool
	FeeToken     string

	// TrackingID keys status updates for this flow. Callers that want
	// to follow the status stream supply their own.
	TrackingID string
}

// Executor runs one composed bundle through the relay as a single
// awaited pipeline: authorize, quote, sign, execute, confirm. The
// relay guarantees in-order execution per chain and cross-chain
// completion-before-dependency; the executor only waits.
type Executor struct {
	relayer    Relayer
	authorizer Authorizer
	signer     ExecutionSigner
	tracker    *StatusTracker
}

func NewExecutor(relayer Relayer, authorizer Authorizer, signer ExecutionSigner, tracker *StatusTracker) *Executor {
	return &Executor{
		relayer:    relayer,
		authorizer: authorizer,
		signer:     signer,
		tracker:    tracker,
	}
}

// Execute submits the instruction bundle and blocks until a terminal
// receipt or an error. A confirmation timeout returns
// ConfirmationTimeoutError with the hash still valid; the tracker
// stays in confirming since the bundle may yet settle.
func (e *Executor) Execute(ctx context.Context, id string, instructions []mee.Instruction, opts ExecutionOptions) (*mee.Receipt, error) {
	receipt, err := e.execute(ctx, id, instructions, opts)
	if err != nil {
		var timeout *mee.ConfirmationTimeoutError
		if !errors.As(err, &timeout) {
			e.tracker.Set(id, StatusFailed)
		}
		return nil, err
	}

	if receipt.Status == mee.ReceiptStatusFailed {
		e.tracker.Set(id, StatusFailed)
		reason := receipt.Error
		if reason == "" {
			reason = "supertransaction reverted"
		}
		return receipt, &mee.ExecutionError{Reason: reason}
	}

	e.tracker.Set(id, StatusSuccess)
	return receipt, nil
}

func (e *Executor) execute(ctx context.Context, id string, instructions []mee.Instruction, opts ExecutionOptions) (*mee.Receipt, error) {
	e.tracker.Set(id, StatusPreparing)
	chainIDs := mee.ChainIDs(instructions)

	e.tracker.Set(id, StatusSigningAuthorization)
	set, err := e.authorizer.GetOrSign(ctx, opts.UseUniversal)
	if err != nil {
		return nil, err
	}
	if err := e.authorizer.ValidateCoverage(set, chainIDs); err != nil {
		return nil, err
	}

	e.tracker.Set(id, StatusGettingQuote)
	quote, err := e.relayer.GetQuote(ctx, &mee.QuoteRequest{
		Instructions:   instructions,
		Delegate:       true,
		Authorizations: set.Ordered(),
		Sponsorship:    opts.Sponsorship,
		FeeToken:       opts.FeeToken,
	})
	if err != nil {
		return nil, err
	}

	e.tracker.Set(id, StatusSigningExecution)
	if err := e.signer.SignQuote(ctx, quote); err != nil {
		return nil, &mee.ExecutionError{Reason: err.Error()}
	}

	e.tracker.Set(id, StatusExecuting)
	hash, err := e.relayer.ExecuteQuote(ctx, quote)
	if err != nil {
		return nil, err
	}
	log.Info().Str("id", id).Msgf("Supertransaction %s submitted", hash.Hex())

	e.tracker.Set(id, StatusConfirming)
	return e.relayer.WaitForReceipt(ctx, hash)
}
