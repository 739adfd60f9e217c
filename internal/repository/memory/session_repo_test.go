package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

func newSession() *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:           uuid.New(),
		DocumentName: "invoice.txt",
		ContentType:  "text/plain",
		Text:         "PAN: ABCDE1234F",
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

func TestSessionRepo_CreateAndGet(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	session := newSession()

	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "invoice.txt", got.DocumentName)
	assert.Equal(t, 1, repo.Len())
}

func TestSessionRepo_GetReturnsCopy(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	session := newSession()
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	got.DocumentName = "mutated.txt"

	again, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "invoice.txt", again.DocumentName)
}

func TestSessionRepo_GetUnknown(t *testing.T) {
	repo := NewSessionRepo()

	got, err := repo.GetByID(context.Background(), uuid.New())
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSessionRepo_UpdateRefreshesActivity(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	session := newSession()
	session.LastActiveAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, session))

	session.Records = []domain.EntityRecord{
		{Identifier: "ABCDE1234F", Relation: domain.RelationIdentifierOf, EntityName: "Sharma Traders", EntityType: domain.EntityTypeOrganisation},
	}
	require.NoError(t, repo.Update(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, got.Records, 1)
	assert.WithinDuration(t, time.Now(), got.LastActiveAt, time.Minute)
}

func TestSessionRepo_UpdateUnknown(t *testing.T) {
	repo := NewSessionRepo()

	err := repo.Update(context.Background(), newSession())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSessionRepo_DeleteIsIdempotent(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	session := newSession()
	require.NoError(t, repo.Create(ctx, session))

	require.NoError(t, repo.Delete(ctx, session.ID))
	require.NoError(t, repo.Delete(ctx, session.ID))
	assert.Equal(t, 0, repo.Len())
}

func TestSessionRepo_DeleteIdleSince(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()

	idle := newSession()
	idle.LastActiveAt = time.Now().Add(-3 * time.Hour)
	require.NoError(t, repo.Create(ctx, idle))

	active := newSession()
	require.NoError(t, repo.Create(ctx, active))

	removed := repo.DeleteIdleSince(ctx, time.Now().Add(-2*time.Hour))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, repo.Len())

	_, err := repo.GetByID(ctx, idle.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = repo.GetByID(ctx, active.ID)
	assert.NoError(t, err)
}
