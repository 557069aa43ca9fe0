package service

import (
	"context"
	"sort"
	"sync"

	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.Ledger. Balances live in memory guarded
// by a single mutex; every mutation is written through to the BalanceStore
// and mirrored into the LeaderboardStore when one is configured.
type LedgerServiceImpl struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int64

	store       ports.BalanceStore
	leaderboard ports.LeaderboardStore // optional
	startBal    int64
	maxBal      int64
	log         zerolog.Logger
}

// NewLedgerService loads the persisted balances and returns a ready ledger.
// leaderboard may be nil.
func NewLedgerService(ctx context.Context, store ports.BalanceStore, leaderboard ports.LeaderboardStore, startBalance, maxBalance int64, log zerolog.Logger) (*LedgerServiceImpl, error) {
	balances, err := store.Load(ctx)
	if err != nil {
		return nil, apperror.ErrStorageError(err)
	}
	if balances == nil {
		balances = make(map[uuid.UUID]int64)
	}
	for id, amount := range balances {
		balances[id] = domain.ClampBalance(amount, maxBalance)
	}
	s := &LedgerServiceImpl{
		balances:    balances,
		store:       store,
		leaderboard: leaderboard,
		startBal:    startBalance,
		maxBal:      maxBalance,
		log:         log,
	}
	log.Info().Int("identities", len(balances)).Msg("ledger loaded")
	return s, nil
}

// materialize returns the identity's balance, creating the entry at the
// starting amount on first contact. Caller holds s.mu.
func (s *LedgerServiceImpl) materialize(ctx context.Context, id uuid.UUID) int64 {
	if amount, ok := s.balances[id]; ok {
		return amount
	}
	amount := domain.ClampBalance(s.startBal, s.maxBal)
	s.balances[id] = amount
	s.persist(ctx, id, amount)
	return amount
}

// persist writes one balance through to storage and the leaderboard. Write
// failures are logged, never surfaced: the in-memory ledger stays
// authoritative until Flush. Caller holds s.mu.
func (s *LedgerServiceImpl) persist(ctx context.Context, id uuid.UUID, amount int64) {
	if err := s.store.Put(ctx, id, amount); err != nil {
		s.log.Error().Err(err).Str("identity", id.String()).Msg("balance write failed")
	}
	if s.leaderboard != nil {
		if err := s.leaderboard.Set(ctx, id, amount); err != nil {
			s.log.Warn().Err(err).Str("identity", id.String()).Msg("leaderboard update failed")
		}
	}
}

// GetBalance implements ports.Ledger.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, id uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.materialize(ctx, id)
}

// SetBalance implements ports.Ledger.
func (s *LedgerServiceImpl) SetBalance(ctx context.Context, id uuid.UUID, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clamped := domain.ClampBalance(amount, s.maxBal)
	s.balances[id] = clamped
	s.persist(ctx, id, clamped)
}

// AddBalance implements ports.Ledger.
func (s *LedgerServiceImpl) AddBalance(ctx context.Context, id uuid.UUID, delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.materialize(ctx, id)
	updated := domain.AddClamped(current, delta, s.maxBal)
	s.balances[id] = updated
	s.persist(ctx, id, updated)
}

// Pay implements ports.Ledger.
func (s *LedgerServiceImpl) Pay(ctx context.Context, from, to uuid.UUID, amount int64) error {
	return s.transfer(ctx, from, to, amount, 0)
}

// PayWithTax implements ports.Ledger.
func (s *LedgerServiceImpl) PayWithTax(ctx context.Context, from, to uuid.UUID, amount, tax int64) error {
	if tax < 0 || tax > amount {
		return apperror.ErrInvalidAmount()
	}
	return s.transfer(ctx, from, to, amount, tax)
}

// Withdraw implements ports.Ledger.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, id uuid.UUID, amount int64) error {
	if amount < 0 {
		return apperror.ErrInvalidAmount()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.materialize(ctx, id)
	if balance < amount {
		return apperror.ErrInsufficientFunds()
	}
	updated := balance - amount
	s.balances[id] = updated
	s.persist(ctx, id, updated)
	return nil
}

// transfer settles both sides under one lock acquisition, so no interleaved
// mutation can observe the debit without the credit. The tax portion of the
// amount is credited nowhere.
func (s *LedgerServiceImpl) transfer(ctx context.Context, from, to uuid.UUID, amount, tax int64) error {
	if amount < 0 {
		return apperror.ErrInvalidAmount()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	fromBal := s.materialize(ctx, from)
	if fromBal < amount {
		return apperror.ErrInsufficientFunds()
	}

	if from == to {
		// A self-payment moves nothing; only the tax leaves the account.
		updated := fromBal - tax
		s.balances[from] = updated
		s.persist(ctx, from, updated)
		return nil
	}

	toBal := s.materialize(ctx, to)
	newFrom := fromBal - amount
	newTo := domain.AddClamped(toBal, amount-tax, s.maxBal)
	s.balances[from] = newFrom
	s.balances[to] = newTo
	s.persist(ctx, from, newFrom)
	s.persist(ctx, to, newTo)

	s.log.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Int64("amount", amount).
		Int64("tax", tax).
		Msg("payment settled")
	return nil
}

// RemoveIdentity implements ports.Ledger.
func (s *LedgerServiceImpl) RemoveIdentity(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.balances, id)
	if err := s.store.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("identity", id.String()).Msg("balance delete failed")
	}
	if s.leaderboard != nil {
		if err := s.leaderboard.Remove(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("identity", id.String()).Msg("leaderboard remove failed")
		}
	}
}

// Top implements ports.Ledger. The leaderboard store serves ranked reads when
// configured; otherwise the in-memory map is sorted on demand.
func (s *LedgerServiceImpl) Top(ctx context.Context, n int) ([]ports.BalanceRank, error) {
	if n <= 0 {
		return nil, nil
	}
	if s.leaderboard != nil {
		ranks, err := s.leaderboard.Top(ctx, n)
		if err == nil {
			return ranks, nil
		}
		s.log.Warn().Err(err).Msg("leaderboard read failed, ranking in memory")
	}

	s.mu.Lock()
	ranks := make([]ports.BalanceRank, 0, len(s.balances))
	for id, amount := range s.balances {
		ranks = append(ranks, ports.BalanceRank{Identity: id, Amount: amount})
	}
	s.mu.Unlock()

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Amount != ranks[j].Amount {
			return ranks[i].Amount > ranks[j].Amount
		}
		return ranks[i].Identity.String() < ranks[j].Identity.String()
	})
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks, nil
}

// Flush implements ports.Ledger.
func (s *LedgerServiceImpl) Flush(ctx context.Context) error {
	s.mu.Lock()
	snapshot := make(map[uuid.UUID]int64, len(s.balances))
	for id, amount := range s.balances {
		snapshot[id] = amount
	}
	s.mu.Unlock()

	if err := s.store.SaveAll(ctx, snapshot); err != nil {
		return apperror.ErrStorageError(err)
	}
	s.log.Info().Int("identities", len(snapshot)).Msg("ledger flushed")
	return nil
}
