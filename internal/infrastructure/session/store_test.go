package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalplate/backend/internal/domain"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)
	ctx := context.Background()

	id, log := store.Create(ctx)
	require.NotEmpty(t, id)
	require.NotNil(t, log)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Same(t, log, got)
}

func TestStore_DistinctSessions(t *testing.T) {
	store := NewStore(time.Hour)
	ctx := context.Background()

	id1, log1 := store.Create(ctx)
	id2, log2 := store.Create(ctx)

	assert.NotEqual(t, id1, id2)

	log1.Append(domain.FoodEntry{Name: "Banana, raw"})
	assert.Equal(t, 1, log1.Len())
	assert.Equal(t, 0, log2.Len())
}

func TestStore_UnknownSession(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	id, _ := store.Create(ctx)
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour)
	ctx := context.Background()

	id, _ := store.Create(ctx)
	require.NoError(t, store.Delete(ctx, id))

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_DefaultTTL(t *testing.T) {
	store := NewStore(0)
	assert.Equal(t, 24*time.Hour, store.ttl)
}
