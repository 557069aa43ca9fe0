package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"craft-economy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketStore_LoadMissingFileReportsNotFound(t *testing.T) {
	store := NewMarketStore(t.TempDir(), zerolog.Nop())

	_, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMarketStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	requester := uuid.New()
	recipient := uuid.New()

	state := &domain.MarketState{
		NextID: 4,
		Requests: []domain.TradeRequest{
			{
				ID:        2,
				Type:      domain.RequestBuy,
				Requester: requester,
				Item:      domain.ItemStack{Kind: domain.Kind("iron_ore"), Quantity: 3, Meta: json.RawMessage(`{"tag":1}`)},
				Price:     300,
			},
			{
				ID:        3,
				Type:      domain.RequestSell,
				Requester: requester,
				Item:      domain.ItemStack{Kind: domain.Kind("diamond"), Quantity: 1},
				Price:     500,
			},
		},
		Deliveries: map[uuid.UUID][]domain.ItemStack{
			recipient: {{Kind: domain.Kind("oak_log"), Quantity: 16}},
		},
	}

	store := NewMarketStore(dir, zerolog.Nop())
	require.NoError(t, store.Save(ctx, state))

	reopened := NewMarketStore(dir, zerolog.Nop())
	loaded, found, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, state, loaded)
}

func TestMarketStore_CorruptDocumentTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, marketFile), []byte("{not json"), 0o644))

	store := NewMarketStore(dir, zerolog.Nop())
	_, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}
