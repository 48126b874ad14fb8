package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tg-supportbot/internal/models"
)

func TestWarningAddAndListByUser(t *testing.T) {
	repo := NewWarningRepository(setupTestDB(t))
	require.NoError(t, repo.MigrateTable())

	require.NoError(t, repo.Add(42, models.WarningReasonBannedWord))
	require.NoError(t, repo.Add(42, models.WarningReasonBannedWord))
	require.NoError(t, repo.Add(99, models.WarningReasonBannedWord))

	warnings, err := repo.ListByUser(42)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, int64(42), warnings[0].UserID)
	assert.Equal(t, models.WarningReasonBannedWord, warnings[0].Reason)
}

func TestWarningClearByUserLeavesOthers(t *testing.T) {
	repo := NewWarningRepository(setupTestDB(t))
	require.NoError(t, repo.MigrateTable())

	require.NoError(t, repo.Add(42, models.WarningReasonBannedWord))
	require.NoError(t, repo.Add(99, models.WarningReasonBannedWord))

	require.NoError(t, repo.ClearByUser(42))

	warnings, err := repo.ListByUser(42)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	warnings, err = repo.ListByUser(99)
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
}
