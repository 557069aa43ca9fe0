package dto

import "encoding/json"

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// BalanceResponse is one identity's balance.
type BalanceResponse struct {
	Identity string `json:"identity"`
	Amount   int64  `json:"amount"`
}

// SetBalanceRequest is the request body for an admin balance overwrite.
type SetBalanceRequest struct {
	Amount int64 `json:"amount"`
}

// AdjustBalanceRequest is the request body for an admin balance delta.
type AdjustBalanceRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

// TransferRequest is the request body for a player-to-player payment.
type TransferRequest struct {
	From   string `json:"from" binding:"required,uuid"`
	To     string `json:"to" binding:"required,uuid"`
	Amount int64  `json:"amount" binding:"min=0"`
}

// ItemStackDTO is the wire form of a traded item payload.
type ItemStackDTO struct {
	Kind     string          `json:"kind" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
	Meta     json.RawMessage `json:"meta,omitempty"`
}

// CreateRequestRequest is the request body for opening a trade request.
type CreateRequestRequest struct {
	Type      string       `json:"type" binding:"required,oneof=buy sell"`
	Requester string       `json:"requester" binding:"required,uuid"`
	Item      ItemStackDTO `json:"item" binding:"required"`
	Price     int64        `json:"price" binding:"min=0"`
}

// TradeRequestResponse is the wire form of an open trade request.
type TradeRequestResponse struct {
	ID        uint64       `json:"id"`
	Type      string       `json:"type"`
	Requester string       `json:"requester"`
	Item      ItemStackDTO `json:"item"`
	Price     int64        `json:"price"`
}

// WithdrawRequestRequest identifies the withdrawing requester.
type WithdrawRequestRequest struct {
	Requester string `json:"requester" binding:"required,uuid"`
}

// FulfillRequestRequest is the request body for fulfilling a trade request.
type FulfillRequestRequest struct {
	Fulfiller string         `json:"fulfiller" binding:"required,uuid"`
	Items     []ItemStackDTO `json:"items,omitempty"`
}

// FulfillResponse reports the fulfillment outcome.
type FulfillResponse struct {
	Outcome string `json:"outcome"`
}

// PriceEntryResponse is the wire form of a catalog price entry.
type PriceEntryResponse struct {
	Kind     string `json:"kind"`
	Buy      int64  `json:"buy,omitempty"`
	Sell     int64  `json:"sell,omitempty"`
	Category string `json:"category"`
}

// NormalizeResponse reports whether a renormalization changed the catalog.
type NormalizeResponse struct {
	Changed bool `json:"changed"`
}

// ShopTradeRequest is the request body for a shop buy or sell.
type ShopTradeRequest struct {
	Player   string `json:"player" binding:"required,uuid"`
	Kind     string `json:"kind" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}
