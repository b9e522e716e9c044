package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limoride/internal/reservation"
)

func newTestSession(id string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Wizard:    reservation.NewWizard(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	session := newTestSession("abc", time.Hour)
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, reservation.StepTrip, got.Wizard.Step)
}

func TestMemoryStoreMissingSession(t *testing.T) {
	store := NewMemorySessionStore()
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreExpiredSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	require.NoError(t, store.Save(ctx, newTestSession("old", -time.Minute)))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	require.NoError(t, store.Save(ctx, newTestSession("gone", time.Hour)))
	require.NoError(t, store.Delete(ctx, "gone"))

	_, err := store.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	require.NoError(t, store.Save(ctx, newTestSession("live", time.Hour)))
	require.NoError(t, store.Save(ctx, newTestSession("dead-1", -time.Minute)))
	require.NoError(t, store.Save(ctx, newTestSession("dead-2", -time.Hour)))

	purged, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, purged)

	_, err = store.Get(ctx, "live")
	assert.NoError(t, err)
}
