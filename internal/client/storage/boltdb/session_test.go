package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkruglov/taskkeeper/internal/client/storage"
)

// setupTestStorage creates a BoltDB storage backed by a temp file
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestSessionStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	session := &storage.Session{
		Username:  "alice",
		Token:     "header.payload.signature",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	require.NoError(t, s.SaveSession(ctx, session))

	retrieved, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Username, retrieved.Username)
	assert.Equal(t, session.Token, retrieved.Token)
	assert.Equal(t, session.ExpiresAt, retrieved.ExpiresAt)
	assert.False(t, retrieved.Expired())
}

func TestSessionStorage_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	first := &storage.Session{Username: "alice", Token: "first", ExpiresAt: 100}
	second := &storage.Session{Username: "bob", Token: "second", ExpiresAt: 200}

	require.NoError(t, s.SaveSession(ctx, first))
	require.NoError(t, s.SaveSession(ctx, second))

	retrieved, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", retrieved.Username)
	assert.Equal(t, "second", retrieved.Token)
}

func TestSessionStorage_GetMissing(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	session, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.Nil(t, session)
}

func TestSessionStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	session := &storage.Session{Username: "alice", Token: "tok", ExpiresAt: 100}
	require.NoError(t, s.SaveSession(ctx, session))

	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Deleting again is fine
	require.NoError(t, s.DeleteSession(ctx))
}

func TestSession_Expired(t *testing.T) {
	expired := &storage.Session{ExpiresAt: time.Now().Add(-time.Minute).Unix()}
	assert.True(t, expired.Expired())

	valid := &storage.Session{ExpiresAt: time.Now().Add(time.Minute).Unix()}
	assert.False(t, valid.Expired())
}
