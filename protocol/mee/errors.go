package mee

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// QuoteError is a relay-side rejection of a quote request.
type QuoteError struct {
	Reason string
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("quote rejected: %s", e.Reason)
}

// ExecutionError is a relay-side rejection of an accepted quote.
type ExecutionError struct {
	Reason string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed: %s", e.Reason)
}

// ConfirmationTimeoutError reports that the relay did not produce a
// terminal receipt within the wait window. The supertransaction may
// still settle; Hash remains valid for later lookup.
type ConfirmationTimeoutError struct {
	Hash common.Hash
}

func (e *ConfirmationTimeoutError) Error() string {
	return fmt.Sprintf("no terminal receipt for %s within wait window", e.Hash.Hex())
}
