package mee_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/omnimart-labs/omnimart-core/protocol/mee"
)

// roundTripperFunc allows mocking HTTP transport
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func Test_Client_GetSupportedChains(t *testing.T) {
	tests := []struct {
		name         string
		mockResponse []byte
		statusCode   int
		mockError    error
		wantResult   []uint64
		wantErr      bool
	}{
		{
			name:         "successful response",
			mockResponse: []byte(`{"chainIds": [1, 10, 8453]}`),
			statusCode:   http.StatusOK,
			wantResult:   []uint64{1, 10, 8453},
		},
		{
			name:      "HTTP error",
			mockError: errors.New("connection refused"),
			wantErr:   true,
		},
		{
			name:         "non-200 status",
			mockResponse: []byte("Internal error"),
			statusCode:   http.StatusInternalServerError,
			wantErr:      true,
		},
		{
			name:         "invalid JSON",
			mockResponse: []byte("{invalid"),
			statusCode:   http.StatusOK,
			wantErr:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := mee.NewClient("http://relay.local", "key")
			client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				if req.URL.String() != "http://relay.local/v1/chains" {
					return nil, fmt.Errorf("unexpected URL: %s", req.URL.String())
				}
				if req.Header.Get("x-api-key") != "key" {
					return nil, fmt.Errorf("missing api key header")
				}

				if tc.mockError != nil {
					return nil, tc.mockError
				}

				return &http.Response{
					StatusCode: tc.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tc.mockResponse)),
					Header:     make(http.Header),
				}, nil
			})

			got, err := client.GetSupportedChains(context.Background())

			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tc.wantResult) {
				t.Fatalf("expected %v, got %v", tc.wantResult, got)
			}
			for i := range got {
				if got[i] != tc.wantResult[i] {
					t.Errorf("expected %v, got %v", tc.wantResult, got)
				}
			}
		})
	}
}

func Test_Client_GetQuote(t *testing.T) {
	tests := []struct {
		name         string
		mockResponse []byte
		statusCode   int
		mockError    error
		wantFee      *big.Int
		wantErr      bool
		wantQuoteErr bool
	}{
		{
			name: "successful response",
			mockResponse: []byte(`{
                "quoteId": "q-1",
                "quoteHash": "0x77a7a74fe9318a1f03ac69f75cf4ee24aed3a04b2dc7e6b966a33e6afc6d7e41",
                "fee": "1500",
                "feeToken": "USDC",
                "deadline": 1700000000
            }`),
			statusCode: http.StatusOK,
			wantFee:    big.NewInt(1500),
		},
		{
			name:         "relay rejection",
			mockResponse: []byte(`{"reason": "no route for chain 999"}`),
			statusCode:   http.StatusBadRequest,
			wantErr:      true,
			wantQuoteErr: true,
		},
		{
			name:      "HTTP error",
			mockError: errors.New("connection refused"),
			wantErr:   true,
		},
		{
			name:         "invalid JSON",
			mockResponse: []byte("{invalid"),
			statusCode:   http.StatusOK,
			wantErr:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := mee.NewClient("http://relay.local", "key")
			client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				if req.URL.String() != "http://relay.local/v1/quotes" {
					return nil, fmt.Errorf("unexpected URL: %s", req.URL.String())
				}

				if tc.mockError != nil {
					return nil, tc.mockError
				}

				return &http.Response{
					StatusCode: tc.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tc.mockResponse)),
					Header:     make(http.Header),
				}, nil
			})

			got, err := client.GetQuote(context.Background(), &mee.QuoteRequest{
				Instructions: []mee.Instruction{
					{ChainID: 1},
				},
				Delegate: true,
			})

			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error got %v", err)
				}
				if tc.wantQuoteErr {
					var qErr *mee.QuoteError
					if !errors.As(err, &qErr) {
						t.Errorf("expected QuoteError, got %v", err)
					} else if qErr.Reason != "no route for chain 999" {
						t.Errorf("unexpected reason: %s", qErr.Reason)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.ID != "q-1" {
				t.Errorf("expected quote ID q-1, got %s", got.ID)
			}
			if got.Fee.Cmp(tc.wantFee) != 0 {
				t.Errorf("expected fee %s, got %s", tc.wantFee, got.Fee)
			}
			if !bytes.Equal(got.Payload, tc.mockResponse) {
				t.Errorf("expected raw payload to be retained")
			}
		})
	}
}

func Test_Client_ExecuteQuote(t *testing.T) {
	hash := common.HexToHash("0x8a3f0d6c2e1b9a74fe9318a1f03ac69f75cf4ee24aed3a04b2dc7e6b966a33e6")

	tests := []struct {
		name         string
		mockResponse []byte
		statusCode   int
		mockError    error
		wantHash     common.Hash
		wantErr      bool
		wantExecErr  bool
	}{
		{
			name:         "successful response",
			mockResponse: []byte(fmt.Sprintf(`{"hash": "%s"}`, hash.Hex())),
			statusCode:   http.StatusOK,
			wantHash:     hash,
		},
		{
			name:         "accepted response",
			mockResponse: []byte(fmt.Sprintf(`{"hash": "%s"}`, hash.Hex())),
			statusCode:   http.StatusAccepted,
			wantHash:     hash,
		},
		{
			name:         "relay rejection",
			mockResponse: []byte(`{"reason": "quote expired"}`),
			statusCode:   http.StatusConflict,
			wantErr:      true,
			wantExecErr:  true,
		},
		{
			name:      "HTTP error",
			mockError: errors.New("connection refused"),
			wantErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := mee.NewClient("http://relay.local", "key")
			client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				if req.URL.String() != "http://relay.local/v1/supertransactions" {
					return nil, fmt.Errorf("unexpected URL: %s", req.URL.String())
				}

				body, _ := io.ReadAll(req.Body)
				if !bytes.Contains(body, []byte(`"signature":"0xsigned"`)) {
					return nil, fmt.Errorf("signature missing from submission: %s", body)
				}

				if tc.mockError != nil {
					return nil, tc.mockError
				}

				return &http.Response{
					StatusCode: tc.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tc.mockResponse)),
					Header:     make(http.Header),
				}, nil
			})

			got, err := client.ExecuteQuote(context.Background(), &mee.Quote{
				ID:        "q-1",
				Signature: "0xsigned",
				Payload:   []byte(`{"quoteId": "q-1"}`),
			})

			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error got %v", err)
				}
				if tc.wantExecErr {
					var eErr *mee.ExecutionError
					if !errors.As(err, &eErr) {
						t.Errorf("expected ExecutionError, got %v", err)
					} else if eErr.Reason != "quote expired" {
						t.Errorf("unexpected reason: %s", eErr.Reason)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tc.wantHash {
				t.Errorf("expected hash %s, got %s", tc.wantHash.Hex(), got.Hex())
			}
		})
	}
}

func Test_Client_WaitForReceipt(t *testing.T) {
	hash := common.HexToHash("0x8a3f0d6c2e1b9a74fe9318a1f03ac69f75cf4ee24aed3a04b2dc7e6b966a33e6")

	t.Run("settles after pending polls", func(t *testing.T) {
		responses := [][]byte{
			[]byte(fmt.Sprintf(`{"hash": "%s", "status": "PENDING"}`, hash.Hex())),
			[]byte(fmt.Sprintf(`{"hash": "%s", "status": "PENDING"}`, hash.Hex())),
			[]byte(fmt.Sprintf(`{"hash": "%s", "status": "SUCCESS", "chainIds": [1, 8453]}`, hash.Hex())),
		}

		calls := 0
		client := mee.NewClient("http://relay.local", "key")
		client.PollInterval = time.Millisecond
		client.WaitWindow = time.Second
		client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp := responses[calls]
			if calls < len(responses)-1 {
				calls++
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(resp)),
				Header:     make(http.Header),
			}, nil
		})

		got, err := client.WaitForReceipt(context.Background(), hash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != mee.ReceiptStatusSuccess {
			t.Errorf("expected SUCCESS, got %s", got.Status)
		}
		if calls != 2 {
			t.Errorf("expected 2 pending polls before settlement, got %d", calls)
		}
	})

	t.Run("terminal failure is not an error", func(t *testing.T) {
		client := mee.NewClient("http://relay.local", "key")
		client.PollInterval = time.Millisecond
		client.WaitWindow = time.Second
		client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader([]byte(fmt.Sprintf(`{"hash": "%s", "status": "FAILED", "error": "reverted"}`, hash.Hex())))),
				Header:     make(http.Header),
			}, nil
		})

		got, err := client.WaitForReceipt(context.Background(), hash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != mee.ReceiptStatusFailed {
			t.Errorf("expected FAILED, got %s", got.Status)
		}
		if got.Error != "reverted" {
			t.Errorf("expected revert reason, got %s", got.Error)
		}
	})

	t.Run("wait window exhausted", func(t *testing.T) {
		client := mee.NewClient("http://relay.local", "key")
		client.PollInterval = time.Millisecond
		client.WaitWindow = 20 * time.Millisecond
		client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader([]byte(fmt.Sprintf(`{"hash": "%s", "status": "PENDING"}`, hash.Hex())))),
				Header:     make(http.Header),
			}, nil
		})

		_, err := client.WaitForReceipt(context.Background(), hash)

		var timeoutErr *mee.ConfirmationTimeoutError
		if !errors.As(err, &timeoutErr) {
			t.Fatalf("expected ConfirmationTimeoutError, got %v", err)
		}
		if timeoutErr.Hash != hash {
			t.Errorf("expected hash %s in timeout error, got %s", hash.Hex(), timeoutErr.Hash.Hex())
		}
	})
}
