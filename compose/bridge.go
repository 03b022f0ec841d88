package compose

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/chains/evm/calls/consts"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
)

const (
	FILL_DEADLINE = time.Hour
)

// TokenMatcher resolves the same-symbol token address on another
// chain.
type TokenMatcher interface {
	DestinationToken(sourceChainID uint64, destinationChainID uint64, token common.Address) (common.Address, error)
}

// BridgeOrder moves a fungible asset from one chain to another.
// Depositor must be the sender's delegated address on the source
// chain.
type BridgeOrder struct {
	FromChainID uint64
	ToChainID   uint64
	Token       common.Address
	Depositor   common.Address
	Recipient   common.Address
	Amount      mee.Amount
}

// BridgeBuilder emits the approve+deposit instruction pair for a
// bridge leg. Fill deadline, exclusivity window and relayer are policy
// defaults, not caller-tunable.
type BridgeBuilder struct {
	spokePools map[uint64]common.Address
	tokens     TokenMatcher

	now func() time.Time
}

func NewBridgeBuilder(spokePools map[uint64]common.Address, tokens TokenMatcher) *BridgeBuilder {
	return &BridgeBuilder{
		spokePools: spokePools,
		tokens:     tokens,
		now:        time.Now,
	}
}

// Build returns two source-chain instructions: approve the spoke pool,
// then deposit towards the destination chain.
func (b *BridgeBuilder) Build(o BridgeOrder) ([]mee.Instruction, error) {
	pool, ok := b.spokePools[o.FromChainID]
	if !ok {
		return nil, &UnsupportedChainError{ChainID: o.FromChainID}
	}

	if err := o.Amount.Validate(); err != nil {
		return nil, &CompositionError{Reason: err.Error()}
	}

	outputToken, err := b.tokens.DestinationToken(o.FromChainID, o.ToChainID, o.Token)
	if err != nil {
		return nil, &CompositionError{Reason: err.Error()}
	}

	approve, err := approveErc20Call(o.Token, pool, o.Amount)
	if err != nil {
		return nil, err
	}

	deposit, err := b.depositCall(pool, o, outputToken)
	if err != nil {
		return nil, err
	}

	return []mee.Instruction{
		{ChainID: o.FromChainID, Calls: []mee.Call{approve}},
		{ChainID: o.FromChainID, Calls: []mee.Call{deposit}},
	}, nil
}

func (b *BridgeBuilder) depositCall(pool common.Address, o BridgeOrder, outputToken common.Address) (mee.Call, error) {
	now := b.now()
	amount := o.Amount.Floor()

	// nolint:gosec
	data, err := consts.SpokePoolABI.Pack(
		"depositV3",
		o.Depositor,
		o.Recipient,
		o.Token,
		outputToken,
		amount,
		amount,
		new(big.Int).SetUint64(o.ToChainID),
		common.Address{},
		uint32(now.Unix()),
		uint32(now.Add(FILL_DEADLINE).Unix()),
		uint32(0),
		[]byte{},
	)
	if err != nil {
		return mee.Call{}, err
	}

	c := mee.Call{
		To:    pool,
		Value: mee.NewBigInt(big.NewInt(0)),
		Data:  data,
	}
	if o.Amount.Runtime != nil {
		c.Amount = &o.Amount
	}
	return c, nil
}
