package compose

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
	"github.com/rs/zerolog/log"
)

type ListingParams struct {
	ChainID      uint64
	Collection   common.Address
	TokenID      *big.Int
	PaymentToken common.Address
	Price        *big.Int
}

type BuyParams struct {
	ChainID      uint64
	Buyer        common.Address
	ListingID    *big.Int
	PaymentToken common.Address
	Price        *big.Int
}

type CrossChainBuyParams struct {
	BuyParams

	PaymentChainID uint64
	// PaymentToken address on the payment chain when it differs from
	// the listing chain.
	SourceToken common.Address
	AutoBridge  bool
}

// Composer builds ordered per-chain instruction lists. Prices and
// token addresses are taken verbatim from the caller; the composer
// never queries on-chain state, balance-dependent amounts are deferred
// to the relay.
type Composer struct {
	marketplaces map[uint64]common.Address
	bridge       *BridgeBuilder
}

func NewComposer(marketplaces map[uint64]common.Address, bridge *BridgeBuilder) *Composer {
	return &Composer{
		marketplaces: marketplaces,
		bridge:       bridge,
	}
}

// ComposeList approves the marketplace for the token and creates the
// listing, both on the listing chain.
func (c *Composer) ComposeList(p ListingParams) ([]mee.Instruction, error) {
	marketplace, ok := c.marketplaces[p.ChainID]
	if !ok {
		return nil, &UnsupportedChainError{ChainID: p.ChainID}
	}

	if p.TokenID == nil || p.Price == nil {
		return nil, &CompositionError{Reason: "listing requires tokenId and price"}
	}

	approve, err := approveErc721Call(p.Collection, marketplace, p.TokenID)
	if err != nil {
		return nil, err
	}

	list, err := createListingCall(marketplace, p.Collection, p.TokenID, p.PaymentToken, p.Price)
	if err != nil {
		return nil, err
	}

	return []mee.Instruction{
		{ChainID: p.ChainID, Calls: []mee.Call{approve}},
		{ChainID: p.ChainID, Calls: []mee.Call{list}},
	}, nil
}

// ComposeSameChainBuy approves the exact price and buys on one chain.
func (c *Composer) ComposeSameChainBuy(p BuyParams) ([]mee.Instruction, error) {
	marketplace, ok := c.marketplaces[p.ChainID]
	if !ok {
		return nil, &UnsupportedChainError{ChainID: p.ChainID}
	}

	if p.ListingID == nil || p.Price == nil {
		return nil, &CompositionError{Reason: "purchase requires listingId and price"}
	}

	approve, err := approveErc20Call(p.PaymentToken, marketplace, mee.FixedAmount(p.Price))
	if err != nil {
		return nil, err
	}

	buy, err := buyCall(marketplace, p.ListingID)
	if err != nil {
		return nil, err
	}

	return []mee.Instruction{
		{ChainID: p.ChainID, Calls: []mee.Call{approve}},
		{ChainID: p.ChainID, Calls: []mee.Call{buy}},
	}, nil
}

// ComposeCrossChainBuy bridges payment funds to the listing chain and
// buys there. With matching chains it degrades to a same-chain buy.
// With AutoBridge off no bridge legs are emitted and funds are assumed
// to already sit on the listing chain.
func (c *Composer) ComposeCrossChainBuy(p CrossChainBuyParams) ([]mee.Instruction, error) {
	if p.PaymentChainID == p.ChainID || !p.AutoBridge {
		return c.ComposeSameChainBuy(p.BuyParams)
	}

	marketplace, ok := c.marketplaces[p.ChainID]
	if !ok {
		return nil, &UnsupportedChainError{ChainID: p.ChainID}
	}

	if p.ListingID == nil || p.Price == nil {
		return nil, &CompositionError{Reason: "purchase requires listingId and price"}
	}

	bridgeLegs, err := c.bridge.Build(BridgeOrder{
		FromChainID: p.PaymentChainID,
		ToChainID:   p.ChainID,
		Token:       p.SourceToken,
		Depositor:   p.Buyer,
		Recipient:   p.Buyer,
		Amount:      mee.FixedAmount(p.Price),
	})
	if err != nil {
		return nil, err
	}

	// The bridged-out amount depends on relay fees, so the
	// destination approval resolves the buyer's balance at execution
	// time instead of re-approving the quoted price.
	approve, err := approveErc20Call(
		p.PaymentToken,
		marketplace,
		mee.RuntimeBalance(p.PaymentToken, p.Buyer, p.Price),
	)
	if err != nil {
		return nil, err
	}

	buy, err := buyCall(marketplace, p.ListingID)
	if err != nil {
		return nil, err
	}

	instructions := bridgeLegs
	instructions = append(instructions,
		mee.Instruction{ChainID: p.ChainID, Calls: []mee.Call{approve}},
		mee.Instruction{ChainID: p.ChainID, Calls: []mee.Call{buy}},
	)
	return instructions, nil
}

// ComposeBatchBuy emits an approve+buy pair per item. Items on chains
// without a purchase target are skipped with a warning; if every item
// is skipped the batch fails.
func (c *Composer) ComposeBatchBuy(items []BuyParams) ([]mee.Instruction, error) {
	if len(items) == 0 {
		return nil, &CompositionError{Reason: "empty batch"}
	}

	instructions := make([]mee.Instruction, 0, len(items)*2)
	composed := 0
	for _, item := range items {
		ins, err := c.ComposeSameChainBuy(item)
		var unsupported *UnsupportedChainError
		if errors.As(err, &unsupported) {
			log.Warn().Err(err).Msgf("Skipping batch item %s on chain %d", item.ListingID, item.ChainID)
			continue
		}
		if err != nil {
			return nil, err
		}

		instructions = append(instructions, ins...)
		composed++
	}

	if composed == 0 {
		return nil, &CompositionError{Reason: "no purchasable items in batch"}
	}

	return instructions, nil
}

func (c *Composer) ComposeCancel(chainID uint64, listingID *big.Int) ([]mee.Instruction, error) {
	marketplace, ok := c.marketplaces[chainID]
	if !ok {
		return nil, &UnsupportedChainError{ChainID: chainID}
	}

	if listingID == nil {
		return nil, &CompositionError{Reason: "cancel requires listingId"}
	}

	cancel, err := cancelListingCall(marketplace, listingID)
	if err != nil {
		return nil, err
	}

	return []mee.Instruction{
		{ChainID: chainID, Calls: []mee.Call{cancel}},
	}, nil
}
