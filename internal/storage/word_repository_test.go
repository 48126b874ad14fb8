package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordAddLowercasesAndDeduplicates(t *testing.T) {
	repo := NewWordRepository(setupTestDB(t))
	require.NoError(t, repo.MigrateTable())

	require.NoError(t, repo.Add("SPAM"))
	require.NoError(t, repo.Add("spam"))
	require.NoError(t, repo.Add("Scam"))

	words, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"spam", "scam"}, words)
}

func TestWordRemoveMatchesAnyCase(t *testing.T) {
	repo := NewWordRepository(setupTestDB(t))
	require.NoError(t, repo.MigrateTable())

	require.NoError(t, repo.Add("spam"))
	require.NoError(t, repo.Add("scam"))

	require.NoError(t, repo.Remove("SPAM"))

	words, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"scam"}, words)

	// Removing a word that is not stored is not an error.
	require.NoError(t, repo.Remove("missing"))
}

func TestWordListEmpty(t *testing.T) {
	repo := NewWordRepository(setupTestDB(t))
	require.NoError(t, repo.MigrateTable())

	words, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, words)
}
