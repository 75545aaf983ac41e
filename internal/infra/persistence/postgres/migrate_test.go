package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	script := `-- schema
CREATE TABLE a (
    id TEXT PRIMARY KEY
);

CREATE INDEX idx_a ON a (id);
SELECT 1`

	got := splitStatements(script)

	require.Len(t, got, 3)
	assert.Equal(t, "CREATE TABLE a (\n    id TEXT PRIMARY KEY\n);", got[0])
	assert.Equal(t, "CREATE INDEX idx_a ON a (id);", got[1])
	assert.Equal(t, "SELECT 1", got[2])
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	content, err := migrationFiles.ReadFile(names[0])
	require.NoError(t, err)

	statements := splitStatements(string(content))
	assert.NotEmpty(t, statements)
	for _, stmt := range statements {
		assert.Regexp(t, `^CREATE (TABLE|INDEX) IF NOT EXISTS `, stmt)
	}
}
