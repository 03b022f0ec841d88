package executor

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
)

// TransactionResult is the terminal artifact returned to callers.
// Error is set only when Status is failed.
type TransactionResult struct {
	Hash         common.Hash  `json:"hash"`
	Status       Status       `json:"status"`
	ChainIDs     []uint64     `json:"chainIds"`
	ExplorerLink string       `json:"explorerLink"`
	Receipt      *mee.Receipt `json:"receipt,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// Reporter normalizes receipts and raised errors into the single
// result envelope, so callers never need their own catch blocks.
type Reporter struct {
	explorerURL string
}

func NewReporter(explorerURL string) *Reporter {
	return &Reporter{explorerURL: explorerURL}
}

// Report converts the outcome of one submission. Any error except a
// confirmation timeout becomes a failed result with a zero hash; a
// timeout keeps the hash and reports the bundle as still processing.
func (r *Reporter) Report(receipt *mee.Receipt, chainIDs []uint64, err error) *TransactionResult {
	if err == nil {
		return &TransactionResult{
			Hash:         receipt.Hash,
			Status:       StatusSuccess,
			ChainIDs:     chainIDs,
			ExplorerLink: r.link(receipt),
			Receipt:      receipt,
		}
	}

	var timeout *mee.ConfirmationTimeoutError
	if errors.As(err, &timeout) {
		return &TransactionResult{
			Hash:         timeout.Hash,
			Status:       StatusProcessing,
			ChainIDs:     chainIDs,
			ExplorerLink: fmt.Sprintf("%s/tx/%s", r.explorerURL, timeout.Hash.Hex()),
		}
	}

	res := &TransactionResult{
		Hash:     common.Hash{},
		Status:   StatusFailed,
		ChainIDs: chainIDs,
		Error:    err.Error(),
	}
	if receipt != nil {
		res.Hash = receipt.Hash
		res.ExplorerLink = r.link(receipt)
		res.Receipt = receipt
	}
	return res
}

func (r *Reporter) link(receipt *mee.Receipt) string {
	if receipt.ExplorerLink != "" {
		return receipt.ExplorerLink
	}
	return fmt.Sprintf("%s/tx/%s", r.explorerURL, receipt.Hash.Hex())
}
