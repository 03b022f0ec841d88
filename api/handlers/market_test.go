package handlers_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/omnimart-labs/omnimart-core/api/handlers"
	mock_handlers "github.com/omnimart-labs/omnimart-core/api/handlers/mock"
	"github.com/omnimart-labs/omnimart-core/compose"
	"github.com/omnimart-labs/omnimart-core/executor"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var chains = map[uint64]struct{}{
	1:    {},
	8453: {},
}

type MarketHandlerTestSuite struct {
	suite.Suite

	mockMarketer *mock_handlers.MockMarketer
	handler      *handlers.MarketHandler
}

func TestRunMarketHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MarketHandlerTestSuite))
}

func (s *MarketHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockMarketer = mock_handlers.NewMockMarketer(ctrl)
	s.handler = handlers.NewMarketHandler(s.mockMarketer, chains, true)
}

func (s *MarketHandlerTestSuite) Test_HandleList_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewBufferString("{invalid"))
	recorder := httptest.NewRecorder()

	s.handler.HandleList(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleList_UnsupportedChain() {
	body := `{
		"chainId": 42161,
		"collection": "0x1D1d1D1d1d1D1D1D1d1d1d1D1D1D1d1d1d1d1D1d",
		"tokenId": "7",
		"paymentToken": "0x2E2E2E2E2E2E2E2e2e2e2E2E2e2E2E2e2e2e2E2e",
		"price": "1000000"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleList(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleList_MissingPrice() {
	body := `{
		"chainId": 1,
		"collection": "0x1D1d1D1d1d1D1D1D1d1d1d1D1D1D1d1d1d1d1D1d",
		"tokenId": "7"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleList(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleList_Success() {
	s.mockMarketer.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p compose.ListingParams, opts executor.ExecutionOptions) *executor.TransactionResult {
			s.Equal(uint64(1), p.ChainID)
			s.Equal(common.HexToAddress("0x1D1d1D1d1d1D1D1D1d1d1d1D1D1D1d1d1d1d1D1d"), p.Collection)
			s.Equal(big.NewInt(7), p.TokenID)
			s.Equal(big.NewInt(1000000), p.Price)
			s.True(opts.UseUniversal)
			return &executor.TransactionResult{Status: executor.StatusSuccess}
		})

	body := `{
		"chainId": 1,
		"collection": "0x1D1d1D1d1d1D1D1D1d1d1d1D1D1D1d1d1d1d1D1d",
		"tokenId": "7",
		"paymentToken": "0x2E2E2E2E2E2E2E2e2e2e2E2E2e2E2E2e2e2e2E2e",
		"price": "1000000",
		"options": {"useUniversal": true}
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleList(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)

	result := &executor.TransactionResult{}
	s.Nil(json.NewDecoder(recorder.Body).Decode(result))
	s.Equal(executor.StatusSuccess, result.Status)
}

func (s *MarketHandlerTestSuite) Test_HandleList_FailedEnvelopeStillOK() {
	s.mockMarketer.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		&executor.TransactionResult{Status: executor.StatusFailed, Error: "user declined"})

	body := `{
		"chainId": 1,
		"collection": "0x1D1d1D1d1d1D1D1D1d1d1d1D1D1D1d1d1d1d1D1d",
		"tokenId": "7",
		"price": "1000000"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/listings", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleList(recorder, req)

	// submission outcomes ride inside the envelope, not on the HTTP
	// status
	s.Equal(http.StatusOK, recorder.Code)

	result := &executor.TransactionResult{}
	s.Nil(json.NewDecoder(recorder.Body).Decode(result))
	s.Equal(executor.StatusFailed, result.Status)
	s.Equal("user declined", result.Error)
}

func (s *MarketHandlerTestSuite) Test_HandleBuy_DefaultsPaymentChainAndAutoBridge() {
	s.mockMarketer.EXPECT().Buy(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p compose.CrossChainBuyParams, opts executor.ExecutionOptions) *executor.TransactionResult {
			s.Equal(uint64(8453), p.PaymentChainID)
			s.True(p.AutoBridge)
			// service-level default applies when options are omitted
			s.True(opts.UseUniversal)
			return &executor.TransactionResult{Status: executor.StatusSuccess}
		})

	body := `{
		"chainId": 8453,
		"buyer": "0x4a4A4a4A4A4a4a4a4a4A4A4a4A4a4a4A4A4A4a4A",
		"listingId": "42",
		"paymentToken": "0x3F3f3F3F3F3f3f3F3F3F3f3f3F3f3F3f3f3f3F3F",
		"price": "100"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/purchases", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleBuy(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleBuy_CrossChain() {
	s.mockMarketer.EXPECT().Buy(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p compose.CrossChainBuyParams, _ executor.ExecutionOptions) *executor.TransactionResult {
			s.Equal(uint64(8453), p.ChainID)
			s.Equal(uint64(1), p.PaymentChainID)
			s.Equal(common.HexToAddress("0x2E2E2E2E2E2E2E2e2e2e2E2E2e2E2E2e2e2e2E2e"), p.SourceToken)
			s.False(p.AutoBridge)
			return &executor.TransactionResult{Status: executor.StatusSuccess}
		})

	body := `{
		"chainId": 8453,
		"paymentChainId": 1,
		"buyer": "0x4a4A4a4A4A4a4a4a4a4A4A4a4A4a4a4A4A4A4a4A",
		"listingId": "42",
		"paymentToken": "0x3F3f3F3F3F3f3f3F3F3F3f3f3F3f3F3f3f3f3F3F",
		"sourceToken": "0x2E2E2E2E2E2E2E2e2e2e2E2E2e2E2E2e2e2e2E2e",
		"price": "100",
		"autoBridge": false
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/purchases", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleBuy(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleBuy_UniversalOptOut() {
	s.mockMarketer.EXPECT().Buy(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, _ compose.CrossChainBuyParams, opts executor.ExecutionOptions) *executor.TransactionResult {
			s.False(opts.UseUniversal)
			return &executor.TransactionResult{Status: executor.StatusSuccess}
		})

	body := `{
		"chainId": 1,
		"buyer": "0x4a4A4a4A4A4a4a4a4a4A4A4a4A4a4a4A4A4A4a4A",
		"listingId": "42",
		"price": "100",
		"options": {"useUniversal": false}
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/purchases", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleBuy(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleBuy_MissingBuyer() {
	body := `{
		"chainId": 1,
		"listingId": "42",
		"price": "100"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/purchases", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleBuy(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleBatchBuy_EmptyItems() {
	req := httptest.NewRequest(http.MethodPost, "/v1/purchases/batch", bytes.NewBufferString(`{"items": []}`))
	recorder := httptest.NewRecorder()

	s.handler.HandleBatchBuy(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleBatchBuy_InvalidItem() {
	body := `{
		"items": [
			{"chainId": 1, "buyer": "0x4a4A4a4A4A4a4a4a4a4A4A4a4A4a4a4A4A4A4a4A", "listingId": "1", "price": "100"},
			{"chainId": 1}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/purchases/batch", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleBatchBuy(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleBatchBuy_Success() {
	s.mockMarketer.EXPECT().BuyBatch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, items []compose.BuyParams, _ executor.ExecutionOptions) *executor.TransactionResult {
			s.Len(items, 2)
			s.Equal(big.NewInt(1), items[0].ListingID)
			s.Equal(big.NewInt(2), items[1].ListingID)
			return &executor.TransactionResult{Status: executor.StatusSuccess}
		})

	body := `{
		"items": [
			{"chainId": 1, "buyer": "0x4a4A4a4A4A4a4a4a4a4A4A4a4A4a4a4A4A4A4a4A", "listingId": "1", "price": "100"},
			{"chainId": 8453, "buyer": "0x4a4A4a4A4A4a4a4a4a4A4A4a4A4a4a4A4A4A4a4A", "listingId": "2", "price": "200"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/purchases/batch", bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()

	s.handler.HandleBatchBuy(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleCancel_InvalidChainID() {
	req := httptest.NewRequest(http.MethodDelete, "/v1/chains/invalid/listings/42", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId":   "invalid",
		"listingId": "42",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleCancel(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleCancel_ChainNotFound() {
	req := httptest.NewRequest(http.MethodDelete, "/v1/chains/42161/listings/42", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId":   "42161",
		"listingId": "42",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleCancel(recorder, req)

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *MarketHandlerTestSuite) Test_HandleCancel_Success() {
	s.mockMarketer.EXPECT().Cancel(gomock.Any(), uint64(1), big.NewInt(42), gomock.Any()).Return(
		&executor.TransactionResult{Status: executor.StatusSuccess})

	req := httptest.NewRequest(http.MethodDelete, "/v1/chains/1/listings/42", nil)
	req = mux.SetURLVars(req, map[string]string{
		"chainId":   "1",
		"listingId": "42",
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleCancel(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
}
