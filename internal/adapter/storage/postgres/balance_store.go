package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// BalanceStore implements ports.BalanceStore on the balances table.
type BalanceStore struct {
	pool Pool
}

// NewBalanceStore creates a new BalanceStore.
func NewBalanceStore(pool Pool) *BalanceStore {
	return &BalanceStore{pool: pool}
}

// Load fetches the full identity -> amount mapping.
func (s *BalanceStore) Load(ctx context.Context) (map[uuid.UUID]int64, error) {
	rows, err := s.pool.Query(ctx, `SELECT identity, amount FROM balances`)
	if err != nil {
		return nil, fmt.Errorf("load balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[uuid.UUID]int64)
	for rows.Next() {
		var id uuid.UUID
		var amount int64
		if err := rows.Scan(&id, &amount); err != nil {
			return nil, fmt.Errorf("scan balance row: %w", err)
		}
		balances[id] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balance rows: %w", err)
	}
	return balances, nil
}

// Put upserts one balance.
func (s *BalanceStore) Put(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `INSERT INTO balances (identity, amount) VALUES ($1, $2)
		ON CONFLICT (identity) DO UPDATE SET amount = EXCLUDED.amount`

	if _, err := s.pool.Exec(ctx, query, id, amount); err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// Delete removes one balance.
func (s *BalanceStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM balances WHERE identity = $1`, id); err != nil {
		return fmt.Errorf("delete balance: %w", err)
	}
	return nil
}

// SaveAll replaces the full persisted state in one transaction.
func (s *BalanceStore) SaveAll(ctx context.Context, balances map[uuid.UUID]int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save-all: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM balances`); err != nil {
		return fmt.Errorf("clear balances: %w", err)
	}
	for id, amount := range balances {
		if _, err := tx.Exec(ctx, `INSERT INTO balances (identity, amount) VALUES ($1, $2)`, id, amount); err != nil {
			return fmt.Errorf("insert balance: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save-all: %w", err)
	}
	return nil
}
