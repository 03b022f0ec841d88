// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/chains/evm/calls/consts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
)

// DelegatorContract reads the delegate designator deployed on one
// chain. Authorization signatures commit to the account nonce it
// tracks.
type DelegatorContract struct {
	contracts.Contract
	client client.Client
}

func NewDelegatorContract(
	client client.Client,
	address common.Address,
) *DelegatorContract {
	return &DelegatorContract{
		Contract: contracts.NewContract(address, consts.DelegatorABI, nil, client, nil),
		client:   client,
	}
}

func (c *DelegatorContract) Nonce(account common.Address) (*big.Int, error) {
	res, err := c.CallContract("nonces", account)
	if err != nil {
		return nil, err
	}

	out := *abi.ConvertType(res[0], new(*big.Int)).(**big.Int)
	return out, nil
}
