package repository_test

import (
	"context"
	"testing"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"
	"event-ticketing/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewActivityRepository(testDB)
	userID := testutil.CreateUser(t, testDB, "Ana", "ana@example.com")

	created, err := repo.Create(ctx, &model.ActivityLog{
		UserID:      userID,
		Action:      model.ActivityCheckout,
		Description: "order #1",
		IPAddress:   "10.0.0.1",
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	entries, err := repo.ListByUserID(ctx, userID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActivityCheckout, entries[0].Action)
	assert.Equal(t, "10.0.0.1", entries[0].IPAddress)
}
