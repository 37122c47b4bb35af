package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{
			dsn:  "user:pw@tcp(localhost:3306)/dayboard?parseTime=True",
			want: "mysql://user:pw@tcp(localhost:3306)/dayboard?parseTime=True&multiStatements=true",
		},
		{
			dsn:  "user:pw@tcp(db:3306)/dayboard",
			want: "mysql://user:pw@tcp(db:3306)/dayboard?multiStatements=true",
		},
		{
			dsn:  "mysql://user:pw@tcp(db:3306)/dayboard?multiStatements=false",
			want: "mysql://user:pw@tcp(db:3306)/dayboard?multiStatements=false",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MigrationURL(tt.dsn))
	}
}

func TestMigrations_UpAndDownPairs(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestMigrations_ResourceTablesAreOwnerScoped(t *testing.T) {
	for _, table := range []string{"todos", "goals", "notes", "habits"} {
		entries, err := fs.Glob(migrationsFS, "migrations/*_create_"+table+".up.sql")
		require.NoError(t, err)
		require.Len(t, entries, 1, table)

		body, err := fs.ReadFile(migrationsFS, entries[0])
		require.NoError(t, err)
		assert.Contains(t, string(body), "user_id", table)
		assert.Contains(t, string(body), "REFERENCES users (id)", table)
	}
}
