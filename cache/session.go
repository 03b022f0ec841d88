package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
)

const (
	SESSION_TTL = time.Hour * 12
)

// SessionStore keeps signed authorization sets for the lifetime of a
// session. Values are JSON with nonces as decimal strings so
// round-trips preserve them as exact integers.
type SessionStore struct {
	authCache *ttlcache.Cache[string, string]
}

func NewSessionStore() *SessionStore {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, string](SESSION_TTL),
	)

	s := &SessionStore{
		authCache: cache,
	}

	go cache.Start()
	return s
}

func (s *SessionStore) Authorizations(owner common.Address) (mee.AuthorizationSet, error) {
	item := s.authCache.Get(sessionKey(owner))
	if item == nil {
		return nil, fmt.Errorf("no authorizations cached for %s", owner.Hex())
	}

	set := make(mee.AuthorizationSet)
	if err := json.Unmarshal([]byte(item.Value()), &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return set, nil
}

func (s *SessionStore) SetAuthorizations(owner common.Address, set mee.AuthorizationSet) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return err
	}

	s.authCache.Set(sessionKey(owner), string(raw), ttlcache.DefaultTTL)
	return nil
}

func (s *SessionStore) Clear(owner common.Address) {
	s.authCache.Delete(sessionKey(owner))
}

func (s *SessionStore) Stop() {
	s.authCache.Stop()
}

func sessionKey(owner common.Address) string {
	return strings.ToLower(owner.Hex())
}
