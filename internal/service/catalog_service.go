package service

import (
	"context"
	"sort"
	"sync"

	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"

	"github.com/rs/zerolog"
)

// CatalogServiceImpl implements ports.PriceCatalog. The catalog is loaded
// (or generated from registry defaults) once at construction and then served
// from memory; Normalize re-runs the rule pipeline and persists on change.
type CatalogServiceImpl struct {
	mu      sync.RWMutex
	catalog domain.Catalog

	reg   *domain.Registry
	store ports.CatalogStore
	log   zerolog.Logger
}

// NewCatalogService loads the persisted catalog, generating the defaults on
// first run, and applies the normalization pipeline before serving.
func NewCatalogService(ctx context.Context, store ports.CatalogStore, reg *domain.Registry, log zerolog.Logger) (*CatalogServiceImpl, error) {
	catalog, found, err := store.Load(ctx)
	if err != nil {
		return nil, apperror.ErrStorageError(err)
	}
	if !found {
		catalog = domain.GenerateDefaults(reg)
		log.Info().Int("entries", len(catalog)).Msg("no persisted catalog, generated defaults")
	}

	normalized, changed := domain.Normalize(catalog, reg)
	if changed || !found {
		if err := store.Save(ctx, normalized); err != nil {
			return nil, apperror.ErrStorageError(err)
		}
	}
	log.Info().
		Int("entries", len(normalized)).
		Bool("changed", changed).
		Msg("catalog ready")

	return &CatalogServiceImpl{
		catalog: normalized,
		reg:     reg,
		store:   store,
		log:     log,
	}, nil
}

// GetPrice implements ports.PriceCatalog. Aux-data suffixes are stripped, so
// variants of a kind share the base kind's entry.
func (s *CatalogServiceImpl) GetPrice(kind domain.ItemKind) (domain.PriceEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.catalog[kind.Base()]
	return entry, ok
}

// BuyableByCategory implements ports.PriceCatalog.
func (s *CatalogServiceImpl) BuyableByCategory(category string) []domain.PriceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []domain.PriceEntry
	for _, e := range s.catalog {
		if e.Category == category && e.Buyable() {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Kind < entries[j].Kind })
	return entries
}

// ListCategories implements ports.PriceCatalog.
func (s *CatalogServiceImpl) ListCategories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, e := range s.catalog {
		if e.Buyable() {
			seen[e.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// Normalize implements ports.PriceCatalog.
func (s *CatalogServiceImpl) Normalize(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized, changed := domain.Normalize(s.catalog, s.reg)
	if !changed {
		return false, nil
	}
	if err := s.store.Save(ctx, normalized); err != nil {
		return false, apperror.ErrStorageError(err)
	}
	s.catalog = normalized
	s.log.Info().Int("entries", len(normalized)).Msg("catalog renormalized")
	return true, nil
}
