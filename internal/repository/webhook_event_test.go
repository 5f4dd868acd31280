package repository

import (
	"context"
	"testing"

	"music-store-backend/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookEventRepository(t *testing.T) {
	db, err := client.InitSqliteClient(":memory:")
	require.NoError(t, err)

	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	seen, err := repo.Exists(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, repo.MarkProcessed(ctx, "evt_1", "checkout.session.completed"))

	seen, err = repo.Exists(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, seen)

	// a retried delivery must not error
	require.NoError(t, repo.MarkProcessed(ctx, "evt_1", "checkout.session.completed"))
}
