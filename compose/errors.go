package compose

import "fmt"

// CompositionError is an invalid request shape caught before any
// network call.
type CompositionError struct {
	Reason string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("composition failed: %s", e.Reason)
}

// UnsupportedChainError marks a chain with no registered purchase
// target or bridge entry point.
type UnsupportedChainError struct {
	ChainID uint64
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("chain %d not supported", e.ChainID)
}
