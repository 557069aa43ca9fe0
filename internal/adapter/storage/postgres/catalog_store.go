package postgres

import (
	"context"
	"fmt"

	"craft-economy/internal/core/domain"
)

// CatalogStore implements ports.CatalogStore on the catalog_entries table.
type CatalogStore struct {
	pool Pool
}

// NewCatalogStore creates a new CatalogStore.
func NewCatalogStore(pool Pool) *CatalogStore {
	return &CatalogStore{pool: pool}
}

// Load fetches every price entry. found is false when the table is empty,
// signalling default generation.
func (s *CatalogStore) Load(ctx context.Context) (domain.Catalog, bool, error) {
	rows, err := s.pool.Query(ctx, `SELECT kind, buy, sell, category FROM catalog_entries`)
	if err != nil {
		return nil, false, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	catalog := make(domain.Catalog)
	for rows.Next() {
		var kind string
		var entry domain.PriceEntry
		if err := rows.Scan(&kind, &entry.Buy, &entry.Sell, &entry.Category); err != nil {
			return nil, false, fmt.Errorf("scan catalog row: %w", err)
		}
		entry.Kind = domain.ItemKind(kind)
		catalog[entry.Kind] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate catalog rows: %w", err)
	}
	if len(catalog) == 0 {
		return nil, false, nil
	}
	return catalog, true, nil
}

// Save replaces the persisted catalog in one transaction.
func (s *CatalogStore) Save(ctx context.Context, c domain.Catalog) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin catalog save: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_entries`); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}
	for _, entry := range c {
		if _, err := tx.Exec(ctx,
			`INSERT INTO catalog_entries (kind, buy, sell, category) VALUES ($1, $2, $3, $4)`,
			string(entry.Kind), entry.Buy, entry.Sell, entry.Category,
		); err != nil {
			return fmt.Errorf("insert catalog entry: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog save: %w", err)
	}
	return nil
}
