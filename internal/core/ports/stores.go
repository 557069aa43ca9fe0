package ports

import (
	"context"

	"craft-economy/internal/core/domain"

	"github.com/google/uuid"
)

// BalanceStore is the durable mapping Identity -> amount. Implementations
// load the full map at startup and persist individual mutations.
type BalanceStore interface {
	Load(ctx context.Context) (map[uuid.UUID]int64, error)
	Put(ctx context.Context, id uuid.UUID, amount int64) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SaveAll replaces the full persisted state; used on shutdown.
	SaveAll(ctx context.Context, balances map[uuid.UUID]int64) error
}

// CatalogStore is the durable price catalog. Load reports found=false when no
// catalog has ever been persisted, signalling default generation.
type CatalogStore interface {
	Load(ctx context.Context) (domain.Catalog, bool, error)
	Save(ctx context.Context, c domain.Catalog) error
}

// MarketStore is the durable request-ledger state: id allocator, open
// requests, and pending deliveries.
type MarketStore interface {
	Load(ctx context.Context) (*domain.MarketState, bool, error)
	Save(ctx context.Context, s *domain.MarketState) error
}

// BalanceRank is one leaderboard row.
type BalanceRank struct {
	Identity uuid.UUID `json:"identity"`
	Amount   int64     `json:"amount"`
}

// LeaderboardStore mirrors balances into a ranked display structure. It is a
// display hook: failures must never affect ledger state.
type LeaderboardStore interface {
	Set(ctx context.Context, id uuid.UUID, amount int64) error
	Remove(ctx context.Context, id uuid.UUID) error
	Top(ctx context.Context, n int) ([]BalanceRank, error)
}
