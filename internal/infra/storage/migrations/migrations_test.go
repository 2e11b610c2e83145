package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(files, dir+"/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"sql/00001_catalog.sql",
		"sql/00002_clients.sql",
		"sql/00003_appointments.sql",
		"sql/00004_cash_transactions.sql",
	}, names)

	for _, name := range names {
		body, err := fs.ReadFile(files, name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"), name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}
