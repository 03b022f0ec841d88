package compose

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/chains/evm/calls/consts"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
)

// approveErc20Call packs an ERC-20 approve. A runtime amount is packed
// at its floor and attached to the call for relay-side injection.
func approveErc20Call(token common.Address, spender common.Address, amount mee.Amount) (mee.Call, error) {
	if err := amount.Validate(); err != nil {
		return mee.Call{}, &CompositionError{Reason: err.Error()}
	}

	data, err := consts.Erc20ABI.Pack("approve", spender, amount.Floor())
	if err != nil {
		return mee.Call{}, err
	}

	c := mee.Call{
		To:    token,
		Value: mee.NewBigInt(big.NewInt(0)),
		Data:  data,
	}
	if amount.Runtime != nil {
		c.Amount = &amount
	}
	return c, nil
}

func approveErc721Call(collection common.Address, operator common.Address, tokenID *big.Int) (mee.Call, error) {
	data, err := consts.Erc721ABI.Pack("approve", operator, tokenID)
	if err != nil {
		return mee.Call{}, err
	}

	return mee.Call{
		To:    collection,
		Value: mee.NewBigInt(big.NewInt(0)),
		Data:  data,
	}, nil
}

func createListingCall(marketplace common.Address, collection common.Address, tokenID *big.Int, paymentToken common.Address, price *big.Int) (mee.Call, error) {
	data, err := consts.MarketplaceABI.Pack("createListing", collection, tokenID, paymentToken, price)
	if err != nil {
		return mee.Call{}, err
	}

	return mee.Call{
		To:    marketplace,
		Value: mee.NewBigInt(big.NewInt(0)),
		Data:  data,
	}, nil
}

func buyCall(marketplace common.Address, listingID *big.Int) (mee.Call, error) {
	data, err := consts.MarketplaceABI.Pack("buyNFT", listingID)
	if err != nil {
		return mee.Call{}, err
	}

	return mee.Call{
		To:    marketplace,
		Value: mee.NewBigInt(big.NewInt(0)),
		Data:  data,
	}, nil
}

func cancelListingCall(marketplace common.Address, listingID *big.Int) (mee.Call, error) {
	data, err := consts.MarketplaceABI.Pack("cancelListing", listingID)
	if err != nil {
		return mee.Call{}, err
	}

	return mee.Call{
		To:    marketplace,
		Value: mee.NewBigInt(big.NewInt(0)),
		Data:  data,
	}, nil
}
