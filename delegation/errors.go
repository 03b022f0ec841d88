package delegation

import (
	"fmt"
	"strconv"
	"strings"
)

// AuthorizationError is a failed signing attempt: the user declined or
// the signing channel was unavailable. Terminal for the current flow.
type AuthorizationError struct {
	ChainIDs []uint64
	Err      error
}

func (e *AuthorizationError) Error() string {
	if len(e.ChainIDs) == 0 {
		return fmt.Sprintf("authorization signing failed: %s", e.Err)
	}
	return fmt.Sprintf("authorization signing failed for chains %s: %s", chainList(e.ChainIDs), e.Err)
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

// MissingAuthorizationError lists chains referenced by the instruction
// list that the authorization set does not cover.
type MissingAuthorizationError struct {
	ChainIDs []uint64
}

func (e *MissingAuthorizationError) Error() string {
	return fmt.Sprintf("no authorization for chains %s", chainList(e.ChainIDs))
}

func chainList(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}
