package executor_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/executor"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
	"github.com/stretchr/testify/suite"
)

type ReporterTestSuite struct {
	suite.Suite

	reporter *executor.Reporter
}

func TestRunReporterTestSuite(t *testing.T) {
	suite.Run(t, new(ReporterTestSuite))
}

func (s *ReporterTestSuite) SetupTest() {
	s.reporter = executor.NewReporter("https://explorer.local")
}

func (s *ReporterTestSuite) Test_Report_Success() {
	receipt := &mee.Receipt{
		Hash:     stxHash,
		Status:   mee.ReceiptStatusSuccess,
		ChainIDs: []uint64{1, 8453},
	}

	result := s.reporter.Report(receipt, []uint64{1, 8453}, nil)

	s.Equal(stxHash, result.Hash)
	s.Equal(executor.StatusSuccess, result.Status)
	s.Equal([]uint64{1, 8453}, result.ChainIDs)
	s.Equal(fmt.Sprintf("https://explorer.local/tx/%s", stxHash.Hex()), result.ExplorerLink)
	s.Equal(receipt, result.Receipt)
	s.Empty(result.Error)
}

func (s *ReporterTestSuite) Test_Report_RelayExplorerLinkPreferred() {
	receipt := &mee.Receipt{
		Hash:         stxHash,
		Status:       mee.ReceiptStatusSuccess,
		ExplorerLink: "https://relay.local/stx/abc",
	}

	result := s.reporter.Report(receipt, []uint64{1}, nil)

	s.Equal("https://relay.local/stx/abc", result.ExplorerLink)
}

func (s *ReporterTestSuite) Test_Report_FailureBeforeSubmission() {
	result := s.reporter.Report(nil, []uint64{1}, errors.New("user declined"))

	s.Equal(common.Hash{}, result.Hash)
	s.Equal(executor.StatusFailed, result.Status)
	s.Equal([]uint64{1}, result.ChainIDs)
	s.Equal("user declined", result.Error)
	s.Nil(result.Receipt)
	s.Empty(result.ExplorerLink)
}

func (s *ReporterTestSuite) Test_Report_FailureWithReceiptKeepsHash() {
	receipt := &mee.Receipt{
		Hash:   stxHash,
		Status: mee.ReceiptStatusFailed,
		Error:  "reverted",
	}

	result := s.reporter.Report(receipt, []uint64{1}, &mee.ExecutionError{Reason: "reverted"})

	s.Equal(stxHash, result.Hash)
	s.Equal(executor.StatusFailed, result.Status)
	s.Equal(receipt, result.Receipt)
	s.NotEmpty(result.ExplorerLink)
}

func (s *ReporterTestSuite) Test_Report_ConfirmationTimeoutIsProcessing() {
	result := s.reporter.Report(nil, []uint64{1, 8453}, &mee.ConfirmationTimeoutError{Hash: stxHash})

	s.Equal(stxHash, result.Hash)
	s.Equal(executor.StatusProcessing, result.Status)
	s.Equal([]uint64{1, 8453}, result.ChainIDs)
	s.Equal(fmt.Sprintf("https://explorer.local/tx/%s", stxHash.Hex()), result.ExplorerLink)
	s.Empty(result.Error)
}
