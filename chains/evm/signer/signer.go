package signer

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// delegationMagic prefixes the signed payload of a delegation grant.
const delegationMagic = byte(0x05)

// NonceReader returns the delegated account nonce tracked by the
// delegate designator on one chain.
type NonceReader interface {
	Nonce(account common.Address) (*big.Int, error)
}

// LocalSigner signs delegation grants and quote hashes with an
// in-process key. Production embedders substitute a wallet-backed
// implementation of the same interfaces.
type LocalSigner struct {
	key    *ecdsa.PrivateKey
	nonces map[uint64]NonceReader
}

func NewLocalSigner(key *ecdsa.PrivateKey, nonces map[uint64]NonceReader) *LocalSigner {
	return &LocalSigner{
		key:    key,
		nonces: nonces,
	}
}

func (s *LocalSigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

// SignAuthorization produces the grant over (chainId, delegate
// contract, account nonce). Chain ID 0 signs a grant valid everywhere.
func (s *LocalSigner) SignAuthorization(ctx context.Context, delegateContract common.Address, chainID uint64) (mee.Authorization, error) {
	nonce, err := s.nonce(chainID)
	if err != nil {
		return mee.Authorization{}, err
	}

	payload, err := rlp.EncodeToBytes([]interface{}{
		new(big.Int).SetUint64(chainID),
		delegateContract,
		nonce,
	})
	if err != nil {
		return mee.Authorization{}, err
	}

	msg := crypto.Keccak256(append([]byte{delegationMagic}, payload...))
	sig, err := crypto.Sign(msg, s.key)
	if err != nil {
		return mee.Authorization{}, err
	}

	return mee.Authorization{
		ChainID: chainID,
		Address: delegateContract,
		Nonce:   mee.NewBigInt(nonce),
		V:       uint64(sig[64]),
		R:       common.BytesToHash(sig[:32]),
		S:       common.BytesToHash(sig[32:64]),
	}, nil
}

// SignQuote signs the relay's quote hash and attaches the signature
// for submission.
func (s *LocalSigner) SignQuote(ctx context.Context, q *mee.Quote) error {
	sig, err := crypto.Sign(q.Hash.Bytes(), s.key)
	if err != nil {
		return err
	}

	q.Signature = "0x" + hex.EncodeToString(sig)
	return nil
}

func (s *LocalSigner) nonce(chainID uint64) (*big.Int, error) {
	reader, ok := s.nonces[chainID]
	if chainID == mee.UniversalChainID {
		// a universal grant signs the nonce of the lowest configured
		// chain; fresh delegated accounts hold the same nonce on all
		ids := maps.Keys(s.nonces)
		if len(ids) == 0 {
			return nil, fmt.Errorf("no nonce reader configured")
		}
		slices.Sort(ids)
		reader, ok = s.nonces[ids[0]], true
	}
	if !ok {
		return nil, fmt.Errorf("no nonce reader for chain %d", chainID)
	}

	return reader.Nonce(s.Address())
}
