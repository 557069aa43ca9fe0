package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RequestType distinguishes buy requests (escrowed promise of payment) from
// sell listings (escrowed item).
type RequestType string

const (
	RequestBuy  RequestType = "buy"
	RequestSell RequestType = "sell"
)

// ItemStack is the opaque traded payload: an item kind, a quantity, and any
// host-specific metadata passed through unchanged.
type ItemStack struct {
	Kind     ItemKind        `json:"kind"`
	Quantity int             `json:"quantity"`
	Meta     json.RawMessage `json:"meta,omitempty"`
}

// TradeRequest is an open order on the market. IDs are sequential and never
// reused; creation order follows id order.
type TradeRequest struct {
	ID        uint64      `json:"id"`
	Type      RequestType `json:"type"`
	Requester uuid.UUID   `json:"requester"`
	Item      ItemStack   `json:"item"`
	Price     int64       `json:"price"`
}

// MarketState is the persisted shape of the request ledger: the id allocator,
// all open requests, and every pending delivery.
type MarketState struct {
	NextID     uint64                    `json:"next_id"`
	Requests   []TradeRequest            `json:"requests"`
	Deliveries map[uuid.UUID][]ItemStack `json:"deliveries"`
}

// NewMarketState returns an empty state with the id allocator at 1.
func NewMarketState() *MarketState {
	return &MarketState{
		NextID:     1,
		Deliveries: make(map[uuid.UUID][]ItemStack),
	}
}

// FulfillOutcome reports the result of a fulfillment attempt.
type FulfillOutcome int

const (
	FulfillOK FulfillOutcome = iota
	FulfillNotFound
	FulfillInsufficientRequesterFunds
	FulfillInsufficientFulfillerItems
)

func (o FulfillOutcome) String() string {
	switch o {
	case FulfillOK:
		return "fulfilled"
	case FulfillNotFound:
		return "not_found"
	case FulfillInsufficientRequesterFunds:
		return "insufficient_requester_funds"
	case FulfillInsufficientFulfillerItems:
		return "insufficient_fulfiller_items"
	}
	return "unknown"
}
