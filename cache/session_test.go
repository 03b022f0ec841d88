package cache_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/cache"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
	"github.com/stretchr/testify/suite"
)

type SessionStoreTestSuite struct {
	suite.Suite

	store *cache.SessionStore
}

func TestRunSessionStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreTestSuite))
}

func (s *SessionStoreTestSuite) SetupTest() {
	s.store = cache.NewSessionStore()
}

func (s *SessionStoreTestSuite) TearDownTest() {
	s.store.Stop()
}

func (s *SessionStoreTestSuite) Test_Authorizations_EmptyStore() {
	_, err := s.store.Authorizations(common.HexToAddress("0x01"))

	s.NotNil(err)
}

func (s *SessionStoreTestSuite) Test_Authorizations_RoundTrip() {
	owner := common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")

	// a nonce past 2^53 would lose precision through float64
	nonce, _ := new(big.Int).SetString("18446744073709551617", 10)
	set := mee.AuthorizationSet{
		1: {
			ChainID: 1,
			Address: common.HexToAddress("0x0000000071727De22E5E9d8BAf0edAc6f37da032"),
			Nonce:   mee.NewBigInt(nonce),
			V:       1,
			R:       common.HexToHash("0xaa"),
			S:       common.HexToHash("0xbb"),
		},
		8453: {
			ChainID: 8453,
			Address: common.HexToAddress("0x0000000071727De22E5E9d8BAf0edAc6f37da032"),
			Nonce:   mee.NewBigInt(big.NewInt(0)),
		},
	}

	err := s.store.SetAuthorizations(owner, set)
	s.Nil(err)

	got, err := s.store.Authorizations(owner)
	s.Nil(err)
	s.Len(got, 2)

	s.Equal(uint64(1), got[1].ChainID)
	s.Equal(nonce.String(), got[1].Nonce.String())
	s.Equal(uint64(1), got[1].V)
	s.Equal(set[1].R, got[1].R)
	s.Equal(set[1].S, got[1].S)
	s.Equal("0", got[8453].Nonce.String())
}

func (s *SessionStoreTestSuite) Test_Authorizations_OwnersAreIsolated() {
	set := mee.AuthorizationSet{
		1: {ChainID: 1, Nonce: mee.NewBigInt(big.NewInt(1))},
	}

	err := s.store.SetAuthorizations(common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"), set)
	s.Nil(err)

	_, err = s.store.Authorizations(common.HexToAddress("0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2"))
	s.NotNil(err)
}

func (s *SessionStoreTestSuite) Test_Clear() {
	owner := common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	set := mee.AuthorizationSet{
		1: {ChainID: 1, Nonce: mee.NewBigInt(big.NewInt(1))},
	}

	err := s.store.SetAuthorizations(owner, set)
	s.Nil(err)

	s.store.Clear(owner)

	_, err = s.store.Authorizations(owner)
	s.NotNil(err)
}
