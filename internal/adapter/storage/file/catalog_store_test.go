package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"craft-economy/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_LoadMissingFileReportsNotFound(t *testing.T) {
	store := NewCatalogStore(t.TempDir(), zerolog.Nop())

	_, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalogStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	catalog := domain.Catalog{
		domain.Kind("iron_ingot"): {Kind: domain.Kind("iron_ingot"), Buy: 120, Sell: 60, Category: "Minerals"},
		domain.Kind("iron_ore"):   {Kind: domain.Kind("iron_ore"), Sell: 5, Category: "Minerals"},
		domain.Kind("bedrock"):    {Kind: domain.Kind("bedrock"), Category: "Miscellaneous"},
	}

	store := NewCatalogStore(dir, zerolog.Nop())
	require.NoError(t, store.Save(ctx, catalog))

	reopened := NewCatalogStore(dir, zerolog.Nop())
	loaded, found, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, catalog, loaded)
}

func TestCatalogStore_FullDefaultCatalogRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	reg := domain.DefaultRegistry()
	normalized, _ := domain.Normalize(domain.GenerateDefaults(reg), reg)

	store := NewCatalogStore(dir, zerolog.Nop())
	require.NoError(t, store.Save(ctx, normalized))

	loaded, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, normalized, loaded)

	// a reload is already at the fixed point
	_, changed := domain.Normalize(loaded, reg)
	assert.False(t, changed)
}

func TestCatalogStore_CorruptLinesDiscarded(t *testing.T) {
	dir := t.TempDir()
	content := `{"kind":"minecraft:iron_ingot","buy":120,"sell":60,"category":"Minerals"}
{broken
{"buy":9,"sell":3,"category":"Food"}
{"kind":"minecraft:coal","buy":24,"sell":12,"category":"Minerals"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalogFile), []byte(content), 0o644))

	store := NewCatalogStore(dir, zerolog.Nop())
	loaded, found, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, loaded, 2)
	assert.Contains(t, loaded, domain.Kind("minecraft:iron_ingot"))
	assert.Contains(t, loaded, domain.Kind("minecraft:coal"))
}
