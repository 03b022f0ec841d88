package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/omnimart-labs/omnimart-core/compose"
	"github.com/omnimart-labs/omnimart-core/executor"
)

// Marketer is the public marketplace surface. Operations return the
// result envelope and never an error.
type Marketer interface {
	List(ctx context.Context, p compose.ListingParams, opts executor.ExecutionOptions) *executor.TransactionResult
	Buy(ctx context.Context, p compose.CrossChainBuyParams, opts executor.ExecutionOptions) *executor.TransactionResult
	BuyBatch(ctx context.Context, items []compose.BuyParams, opts executor.ExecutionOptions) *executor.TransactionResult
	Cancel(ctx context.Context, chainID uint64, listingID *big.Int, opts executor.ExecutionOptions) *executor.TransactionResult
}

type ListingBody struct {
	ChainId      uint64  `json:"chainId"`
	Collection   string  `json:"collection"`
	TokenId      *BigInt `json:"tokenId"`
	PaymentToken string  `json:"paymentToken"`
	Price        *BigInt `json:"price"`

	Options OptionsBody `json:"options"`
}

type PurchaseBody struct {
	ChainId        uint64  `json:"chainId"`
	PaymentChainId uint64  `json:"paymentChainId"`
	Buyer          string  `json:"buyer"`
	ListingId      *BigInt `json:"listingId"`
	PaymentToken   string  `json:"paymentToken"`
	SourceToken    string  `json:"sourceToken"`
	Price          *BigInt `json:"price"`
	AutoBridge     *bool   `json:"autoBridge"`

	Options OptionsBody `json:"options"`
}

type BatchPurchaseBody struct {
	Items []PurchaseBody `json:"items"`

	Options OptionsBody `json:"options"`
}

type OptionsBody struct {
	UseUniversal *bool  `json:"useUniversal"`
	Sponsorship  bool   `json:"sponsorship"`
	FeeToken     string `json:"feeToken"`
	TrackingId   string `json:"trackingId"`
}

func (o OptionsBody) executionOptions(defaultUniversal bool) executor.ExecutionOptions {
	useUniversal := defaultUniversal
	if o.UseUniversal != nil {
		useUniversal = *o.UseUniversal
	}

	return executor.ExecutionOptions{
		UseUniversal: useUniversal,
		Sponsorship:  o.Sponsorship,
		FeeToken:     o.FeeToken,
		TrackingID:   o.TrackingId,
	}
}

type MarketHandler struct {
	market Marketer
	chains map[uint64]struct{}

	// service-level default applied when a request leaves the option
	// unset
	useUniversal bool
}

func NewMarketHandler(market Marketer, chains map[uint64]struct{}, useUniversal bool) *MarketHandler {
	return &MarketHandler{
		market:       market,
		chains:       chains,
		useUniversal: useUniversal,
	}
}

// HandleList composes and submits a listing. The response is always
// the result envelope; failures are reported inside it.
func (h *MarketHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	b := &ListingBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	if err := h.validateListing(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	result := h.market.List(r.Context(), compose.ListingParams{
		ChainID:      b.ChainId,
		Collection:   common.HexToAddress(b.Collection),
		TokenID:      b.TokenId.Int,
		PaymentToken: common.HexToAddress(b.PaymentToken),
		Price:        b.Price.Int,
	}, b.Options.executionOptions(h.useUniversal))

	writeResult(w, result)
}

func (h *MarketHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	b := &PurchaseBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	if err := h.validatePurchase(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	result := h.market.Buy(r.Context(), purchaseParams(b), b.Options.executionOptions(h.useUniversal))
	writeResult(w, result)
}

func (h *MarketHandler) HandleBatchBuy(w http.ResponseWriter, r *http.Request) {
	b := &BatchPurchaseBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	if len(b.Items) == 0 {
		JSONError(w, fmt.Errorf("missing field 'items'"), http.StatusBadRequest)
		return
	}

	items := make([]compose.BuyParams, 0, len(b.Items))
	for i := range b.Items {
		if err := h.validatePurchase(&b.Items[i]); err != nil {
			JSONError(w, fmt.Errorf("invalid item %d: %s", i, err), http.StatusBadRequest)
			return
		}
		items = append(items, purchaseParams(&b.Items[i]).BuyParams)
	}

	result := h.market.BuyBatch(r.Context(), items, b.Options.executionOptions(h.useUniversal))
	writeResult(w, result)
}

func (h *MarketHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("field 'chainId' invalid"), http.StatusBadRequest)
		return
	}
	listingId, ok := new(big.Int).SetString(vars["listingId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("field 'listingId' invalid"), http.StatusBadRequest)
		return
	}

	if _, ok := h.chains[chainId.Uint64()]; !ok {
		JSONError(w, fmt.Errorf("chain '%d' not supported", chainId.Uint64()), http.StatusNotFound)
		return
	}

	result := h.market.Cancel(r.Context(), chainId.Uint64(), listingId, executor.ExecutionOptions{UseUniversal: h.useUniversal})
	writeResult(w, result)
}

func (h *MarketHandler) validateListing(b *ListingBody) error {
	if b.ChainId == 0 {
		return fmt.Errorf("missing field 'chainId'")
	}
	if _, ok := h.chains[b.ChainId]; !ok {
		return fmt.Errorf("chain '%d' not supported", b.ChainId)
	}
	if b.Collection == "" {
		return fmt.Errorf("missing field 'collection'")
	}
	if b.TokenId == nil {
		return fmt.Errorf("missing field 'tokenId'")
	}
	if b.Price == nil {
		return fmt.Errorf("missing field 'price'")
	}
	return nil
}

func (h *MarketHandler) validatePurchase(b *PurchaseBody) error {
	if b.ChainId == 0 {
		return fmt.Errorf("missing field 'chainId'")
	}
	if _, ok := h.chains[b.ChainId]; !ok {
		return fmt.Errorf("chain '%d' not supported", b.ChainId)
	}
	if b.Buyer == "" {
		return fmt.Errorf("missing field 'buyer'")
	}
	if b.ListingId == nil {
		return fmt.Errorf("missing field 'listingId'")
	}
	if b.Price == nil {
		return fmt.Errorf("missing field 'price'")
	}
	return nil
}

func purchaseParams(b *PurchaseBody) compose.CrossChainBuyParams {
	paymentChain := b.PaymentChainId
	if paymentChain == 0 {
		paymentChain = b.ChainId
	}
	autoBridge := true
	if b.AutoBridge != nil {
		autoBridge = *b.AutoBridge
	}

	return compose.CrossChainBuyParams{
		BuyParams: compose.BuyParams{
			ChainID:      b.ChainId,
			Buyer:        common.HexToAddress(b.Buyer),
			ListingID:    b.ListingId.Int,
			PaymentToken: common.HexToAddress(b.PaymentToken),
			Price:        b.Price.Int,
		},
		PaymentChainID: paymentChain,
		SourceToken:    common.HexToAddress(b.SourceToken),
		AutoBridge:     autoBridge,
	}
}

func writeResult(w http.ResponseWriter, result *executor.TransactionResult) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(result)
}
