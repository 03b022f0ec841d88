package delegation

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Signer is the external user-signing capability for delegation
// grants.
type Signer interface {
	SignAuthorization(ctx context.Context, delegateContract common.Address, chainID uint64) (mee.Authorization, error)
}

// Manager obtains one authorization per chain, or a single universal
// one, consulting the session store before prompting the user.
type Manager struct {
	owner            common.Address
	delegateContract common.Address
	chains           []uint64

	signer Signer
	store  Store

	// serializes the miss-then-sign path so concurrent flows cannot
	// both prompt the user
	mu sync.Mutex
}

func NewManager(
	owner common.Address,
	delegateContract common.Address,
	chains []uint64,
	signer Signer,
	store Store,
) *Manager {
	sorted := slices.Clone(chains)
	slices.Sort(sorted)
	return &Manager{
		owner:            owner,
		delegateContract: delegateContract,
		chains:           sorted,
		signer:           signer,
		store:            store,
	}
}

// SignForChain prompts for a grant scoped to one chain.
func (m *Manager) SignForChain(ctx context.Context, chainID uint64) (mee.Authorization, error) {
	auth, err := m.signer.SignAuthorization(ctx, m.delegateContract, chainID)
	if err != nil {
		return mee.Authorization{}, &AuthorizationError{ChainIDs: []uint64{chainID}, Err: err}
	}

	return auth, nil
}

// SignUniversal prompts once for a grant valid on every chain.
func (m *Manager) SignUniversal(ctx context.Context) (mee.Authorization, error) {
	auth, err := m.signer.SignAuthorization(ctx, m.delegateContract, mee.UniversalChainID)
	if err != nil {
		return mee.Authorization{}, &AuthorizationError{Err: err}
	}

	return auth, nil
}

// SignForAllChains covers every supported chain, either with one
// universal grant installed everywhere or with one prompt per chain.
// Chains signed before a failure stay in the returned set; the
// aggregated error names the chains that failed.
func (m *Manager) SignForAllChains(ctx context.Context, useUniversal bool) (mee.AuthorizationSet, error) {
	set := make(mee.AuthorizationSet)

	if useUniversal {
		auth, err := m.SignUniversal(ctx)
		if err != nil {
			return set, err
		}

		for _, chainID := range m.chains {
			set[chainID] = auth
		}
		return set, nil
	}

	failed := make([]uint64, 0)
	var lastErr error
	for _, chainID := range m.chains {
		auth, err := m.SignForChain(ctx, chainID)
		if err != nil {
			failed = append(failed, chainID)
			lastErr = err
			continue
		}

		set[chainID] = auth
	}

	if len(failed) > 0 {
		return set, &AuthorizationError{ChainIDs: failed, Err: lastErr}
	}
	return set, nil
}

// GetOrSign is the primary entry point. It guarantees at most one
// signing prompt per session per mode: the store is consulted first
// and only a miss prompts the user.
func (m *Manager) GetOrSign(ctx context.Context, useUniversal bool) (mee.AuthorizationSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, err := m.store.Authorizations(m.owner)
	if err == nil && m.ValidateCoverage(set, m.chains) == nil {
		return set, nil
	}

	set, err = m.SignForAllChains(ctx, useUniversal)
	if err != nil {
		return nil, err
	}

	if err := m.store.SetAuthorizations(m.owner, set); err != nil {
		// a store failure only costs a re-prompt next session
		log.Warn().Err(err).Msgf("Failed caching authorizations for %s", m.owner.Hex())
	}

	return set, nil
}

// ValidateCoverage fails when any required chain is absent from the
// set. Always checked before submission.
func (m *Manager) ValidateCoverage(set mee.AuthorizationSet, requiredChainIDs []uint64) error {
	missing := make([]uint64, 0)
	for _, chainID := range requiredChainIDs {
		if _, ok := set[chainID]; !ok {
			missing = append(missing, chainID)
		}
	}

	if len(missing) > 0 {
		return &MissingAuthorizationError{ChainIDs: missing}
	}
	return nil
}
