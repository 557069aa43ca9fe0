package ports

import (
	"context"

	"craft-economy/internal/core/domain"

	"github.com/google/uuid"
)

// Ledger owns per-identity balances.
type Ledger interface {
	// GetBalance returns the identity's balance, materializing it at the
	// configured starting amount on first read.
	GetBalance(ctx context.Context, id uuid.UUID) int64
	// SetBalance clamps amount into [0, MaxBalance] and stores it.
	SetBalance(ctx context.Context, id uuid.UUID, amount int64)
	// AddBalance applies a delta (negative allowed) with the same clamping.
	AddBalance(ctx context.Context, id uuid.UUID, delta int64)
	// Pay atomically transfers amount from one identity to another. It
	// returns apperror.ErrInsufficientFunds (state unchanged) when the payer
	// cannot cover the amount, apperror.ErrInvalidAmount for negative amounts.
	// Paying oneself moves nothing.
	Pay(ctx context.Context, from, to uuid.UUID, amount int64) error
	// PayWithTax transfers amount but credits the payee only amount minus
	// tax; the withheld tax is destroyed. One atomic settlement with Pay's
	// failure modes, plus ErrInvalidAmount when tax is negative or exceeds
	// amount.
	PayWithTax(ctx context.Context, from, to uuid.UUID, amount, tax int64) error
	// Withdraw atomically validates and debits amount, with Pay's failure
	// modes. The withdrawn money is destroyed.
	Withdraw(ctx context.Context, id uuid.UUID, amount int64) error
	// RemoveIdentity deletes the balance entry entirely.
	RemoveIdentity(ctx context.Context, id uuid.UUID)
	// Top returns the highest balances in descending order.
	Top(ctx context.Context, n int) ([]BalanceRank, error)
	// Flush persists the full in-memory state (shutdown hook).
	Flush(ctx context.Context) error
}

// PriceCatalog owns the item-kind price mapping.
type PriceCatalog interface {
	GetPrice(kind domain.ItemKind) (domain.PriceEntry, bool)
	// BuyableByCategory returns the buyable entries of a category in stable
	// (kind-sorted) order.
	BuyableByCategory(category string) []domain.PriceEntry
	// ListCategories returns the sorted category labels that contain at
	// least one buyable entry.
	ListCategories() []string
	// Normalize re-applies the rule pipeline, persists the catalog when it
	// changed, and reports whether anything changed.
	Normalize(ctx context.Context) (bool, error)
}

// MarketEvent describes a mutation of the request ledger, delivered to
// registered listeners after the mutation completes.
type MarketEvent struct {
	Kind      string    // request_created, request_withdrawn, request_fulfilled, delivery_added, delivery_claimed
	RequestID uint64    // 0 when not request-scoped
	Recipient uuid.UUID // zero when not delivery-scoped
	Request   *domain.TradeRequest
}

// Market owns open trade requests and pending deliveries.
type Market interface {
	// CreateRequest allocates the next id and stores an open request.
	CreateRequest(ctx context.Context, typ domain.RequestType, requester uuid.UUID, item domain.ItemStack, price int64) (domain.TradeRequest, error)
	// ListOpenRequests returns a stable snapshot ordered by id.
	ListOpenRequests() []domain.TradeRequest
	// WithdrawRequest removes the request without payment. It returns
	// (nil, nil) when the id is unknown, e.g. already fulfilled concurrently.
	WithdrawRequest(ctx context.Context, id uint64, requester uuid.UUID) (*domain.TradeRequest, error)
	// FulfillRequest settles an open request: payment via the Ledger (minus
	// tax) atomically with request removal and delivery creation. items is
	// what the fulfiller hands over (buy requests) and is validated against
	// the request's descriptor.
	FulfillRequest(ctx context.Context, id uint64, fulfiller uuid.UUID, items []domain.ItemStack) (domain.FulfillOutcome, error)

	AddDelivery(ctx context.Context, recipient uuid.UUID, item domain.ItemStack) error
	GetDeliveries(recipient uuid.UUID) []domain.ItemStack
	// ClaimDeliveries removes and returns all pending deliveries.
	ClaimDeliveries(ctx context.Context, recipient uuid.UUID) ([]domain.ItemStack, error)
	// RemoveDelivery removes one matching pending item (partial claim).
	RemoveDelivery(ctx context.Context, recipient uuid.UUID, item domain.ItemStack) error

	// AddListener registers a callback invoked synchronously, in
	// registration order, after every mutation. It returns a handle for
	// RemoveListener.
	AddListener(fn func(MarketEvent)) int
	RemoveListener(handle int)

	// Flush persists the full in-memory state (shutdown hook).
	Flush(ctx context.Context) error
}

// Shop trades directly against the Price Catalog.
type Shop interface {
	// Buy charges the buyer quantity x the catalog buy price and hands the
	// items over, falling back to a market delivery when direct placement
	// is refused.
	Buy(ctx context.Context, buyer uuid.UUID, kind domain.ItemKind, quantity int) (*ShopReceipt, error)
	// Sell credits the seller quantity x the catalog sell price.
	Sell(ctx context.Context, seller uuid.UUID, kind domain.ItemKind, quantity int) (*ShopReceipt, error)
}

// ShopReceipt summarizes a completed catalog trade.
type ShopReceipt struct {
	Kind      domain.ItemKind `json:"kind"`
	Quantity  int             `json:"quantity"`
	UnitPrice int64           `json:"unit_price"`
	Total     int64           `json:"total"`
	Delivered bool            `json:"delivered"` // true when escrowed as a delivery instead of placed directly
}

// InventoryPlacer abstracts the host inventory: Place returns false when the
// items cannot be placed directly and must be escrowed as a delivery.
type InventoryPlacer interface {
	Place(ctx context.Context, owner uuid.UUID, item domain.ItemStack) bool
}

// AuthService exchanges the admin access key for a session token.
type AuthService interface {
	Login(ctx context.Context, accessKey string) (token string, err error)
}

// TokenService issues and validates admin session tokens.
type TokenService interface {
	Generate(subject string) (string, error)
	Validate(token string) (string, error)
}

// KeyVerifier checks an admin access key against its stored hash.
type KeyVerifier interface {
	Verify(key, encodedHash string) (bool, error)
}
