package cartstore

import (
	"context"
	"testing"
	"time"

	"congo/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_FindUnknownSessionReturnsEmptyCart(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	cart, err := store.Find(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", cart.SessionID)
	assert.True(t, cart.IsEmpty())
}

func TestMemoryStore_SaveAndFind(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	cart := entity.NewCart("session-1")
	cart.Add(&entity.Product{ID: 1, Name: "Book", Price: decimal.RequireFromString("10.00")}, 2)
	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Find(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
}

func TestMemoryStore_FindReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	cart := entity.NewCart("session-1")
	cart.Add(&entity.Product{ID: 1, Name: "Book", Price: decimal.RequireFromString("10.00")}, 1)
	require.NoError(t, store.Save(ctx, cart))

	loaded, err := store.Find(ctx, "session-1")
	require.NoError(t, err)
	loaded.Lines[0].Quantity = 99

	reloaded, err := store.Find(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Lines[0].Quantity)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	cart := entity.NewCart("session-1")
	cart.Add(&entity.Product{ID: 1, Name: "Book", Price: decimal.RequireFromString("10.00")}, 1)
	require.NoError(t, store.Save(ctx, cart))

	require.NoError(t, store.Delete(ctx, "session-1"))
	require.NoError(t, store.Delete(ctx, "session-1")) // deleting again is a no-op

	loaded, err := store.Find(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestMemoryStore_ExpiredCartIsGone(t *testing.T) {
	store := NewMemoryStore(time.Hour).(*memoryStore)
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	cart := entity.NewCart("session-1")
	cart.Add(&entity.Product{ID: 1, Name: "Book", Price: decimal.RequireFromString("10.00")}, 1)
	require.NoError(t, store.Save(ctx, cart))

	store.now = func() time.Time { return now.Add(2 * time.Hour) }

	loaded, err := store.Find(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestMemoryStore_SweepRemovesExpiredEntries(t *testing.T) {
	store := NewMemoryStore(time.Hour).(*memoryStore)
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	stale := entity.NewCart("stale")
	stale.Add(&entity.Product{ID: 1, Name: "Book", Price: decimal.RequireFromString("10.00")}, 1)
	require.NoError(t, store.Save(ctx, stale))

	store.now = func() time.Time { return now.Add(2 * time.Hour) }

	fresh := entity.NewCart("fresh")
	fresh.Add(&entity.Product{ID: 2, Name: "Pen", Price: decimal.RequireFromString("5.00")}, 1)
	require.NoError(t, store.Save(ctx, fresh))

	store.sweep()

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.NotContains(t, store.entries, "stale")
	assert.Contains(t, store.entries, "fresh")
}

func TestMemoryStore_CloseStopsJanitor(t *testing.T) {
	store := NewMemoryStore(time.Hour).(*memoryStore)

	require.NoError(t, store.Close())
	require.NoError(t, store.Close()) // closing again is a no-op

	select {
	case <-store.stop:
	default:
		t.Fatal("expected stop channel to be closed")
	}
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	first := entity.NewCart("session-1")
	first.Add(&entity.Product{ID: 1, Name: "Book", Price: decimal.RequireFromString("10.00")}, 1)
	require.NoError(t, store.Save(ctx, first))

	second := entity.NewCart("session-1")
	second.Add(&entity.Product{ID: 2, Name: "Pen", Price: decimal.RequireFromString("5.00")}, 3)
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Find(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, int64(2), loaded.Lines[0].ProductID)
}
