package delegation

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
)

// Store caches signed authorization sets for the browser session.
// Implementations are keyed by lowercased owner address and must keep
// nonces exact through serialization.
type Store interface {
	Authorizations(owner common.Address) (mee.AuthorizationSet, error)
	SetAuthorizations(owner common.Address, set mee.AuthorizationSet) error
	Clear(owner common.Address)
}
