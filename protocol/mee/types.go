package mee

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// UniversalChainID marks an authorization as valid on every chain.
const UniversalChainID uint64 = 0

type BigInt struct {
	*big.Int
}

func NewBigInt(i *big.Int) *BigInt {
	return &BigInt{Int: new(big.Int).Set(i)}
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b.Int == nil {
		b.Int = new(big.Int)
	}

	s := strings.Trim(string(data), "\"")
	_, ok := b.SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse big.Int from %s", s)
	}

	return nil
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", b.String())), nil
}

// Call is a single opaque on-chain invocation. Amount is only set when
// the call argument should be resolved by the relay at execution time.
type Call struct {
	To     common.Address `json:"to"`
	Value  *BigInt        `json:"value"`
	Data   hexutil.Bytes  `json:"data"`
	Amount *Amount        `json:"amount,omitempty"`
}

// Instruction is an ordered set of calls targeted at one chain.
type Instruction struct {
	ChainID uint64 `json:"chainId"`
	Calls   []Call `json:"calls"`
}

// ChainIDs returns the distinct chain IDs referenced by the
// instruction list, sorted ascending.
func ChainIDs(instructions []Instruction) []uint64 {
	chains := make(map[uint64]struct{})
	for _, i := range instructions {
		chains[i.ChainID] = struct{}{}
	}

	ids := maps.Keys(chains)
	slices.Sort(ids)
	return ids
}

// RuntimeAmount defers an amount to the relay: whatever balance the
// owner holds in the token at execution time, subject to MinAmount.
type RuntimeAmount struct {
	Token     common.Address `json:"token"`
	Owner     common.Address `json:"owner"`
	MinAmount *BigInt        `json:"minAmount"`
}

// Amount is a tagged variant. Exactly one of Fixed or Runtime is set.
type Amount struct {
	Fixed   *BigInt        `json:"fixed,omitempty"`
	Runtime *RuntimeAmount `json:"runtime,omitempty"`
}

func FixedAmount(v *big.Int) Amount {
	return Amount{Fixed: NewBigInt(v)}
}

func RuntimeBalance(token common.Address, owner common.Address, minAmount *big.Int) Amount {
	a := Amount{Runtime: &RuntimeAmount{
		Token: token,
		Owner: owner,
	}}
	if minAmount != nil {
		a.Runtime.MinAmount = NewBigInt(minAmount)
	}
	return a
}

func (a Amount) Validate() error {
	if a.Fixed != nil && a.Runtime != nil {
		return fmt.Errorf("amount has both fixed and runtime variants set")
	}
	if a.Fixed == nil && a.Runtime == nil {
		return fmt.Errorf("amount has no variant set")
	}
	if a.Runtime != nil {
		if a.Runtime.MinAmount == nil || a.Runtime.MinAmount.Sign() == 0 {
			return fmt.Errorf("runtime amount requires a non-zero minimum")
		}
	}
	return nil
}

// Floor returns the smallest amount the variant can resolve to. Used
// as the packed placeholder for runtime amounts.
func (a Amount) Floor() *big.Int {
	if a.Fixed != nil {
		return a.Fixed.Int
	}
	return a.Runtime.MinAmount.Int
}

// Authorization is a signed grant delegating execution rights for
// Address on ChainID. ChainID 0 is valid on every chain.
type Authorization struct {
	ChainID uint64         `json:"chainId"`
	Address common.Address `json:"address"`
	Nonce   *BigInt        `json:"nonce"`
	V       uint64         `json:"yParity"`
	R       common.Hash    `json:"r"`
	S       common.Hash    `json:"s"`
}

// AuthorizationSet maps chain ID to the authorization covering it.
type AuthorizationSet map[uint64]Authorization

func (s AuthorizationSet) ChainIDs() []uint64 {
	ids := maps.Keys(s)
	slices.Sort(ids)
	return ids
}

// Ordered returns authorizations sorted by chain ID for submission.
func (s AuthorizationSet) Ordered() []Authorization {
	auths := make([]Authorization, 0, len(s))
	for _, id := range s.ChainIDs() {
		auths = append(auths, s[id])
	}
	return auths
}

type QuoteRequest struct {
	Instructions   []Instruction   `json:"instructions"`
	Delegate       bool            `json:"delegate"`
	Authorizations []Authorization `json:"authorizations"`
	Sponsorship    bool            `json:"sponsorship,omitempty"`
	FeeToken       string          `json:"feeToken,omitempty"`
}

// Quote is the relay's priced route for a quote request. Payload keeps
// the raw relay response so unknown fields survive the round trip back
// to the relay on execution.
type Quote struct {
	ID        string      `json:"quoteId"`
	Hash      common.Hash `json:"quoteHash"`
	Fee       *BigInt     `json:"fee"`
	FeeToken  string      `json:"feeToken"`
	Deadline  int64       `json:"deadline"`
	Signature string      `json:"signature,omitempty"`

	Payload []byte `json:"-"`
}

type ExecuteResult struct {
	Hash common.Hash `json:"hash"`
}

type ReceiptStatus string

const (
	ReceiptStatusPending ReceiptStatus = "PENDING"
	ReceiptStatusSuccess ReceiptStatus = "SUCCESS"
	ReceiptStatusFailed  ReceiptStatus = "FAILED"
)

func (s ReceiptStatus) Terminal() bool {
	return s == ReceiptStatusSuccess || s == ReceiptStatusFailed
}

type Receipt struct {
	Hash         common.Hash   `json:"hash"`
	Status       ReceiptStatus `json:"status"`
	ChainIDs     []uint64      `json:"chainIds"`
	ExplorerLink string        `json:"explorerLink"`
	Error        string        `json:"error,omitempty"`
}
