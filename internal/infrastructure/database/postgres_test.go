package database

import (
	"testing"

	"developer-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{
		Host:     "db",
		Port:     "5433",
		User:     "app",
		Password: "secret",
		Name:     "developers",
		SSLMode:  "disable",
		TimeZone: "UTC",
	})

	assert.Equal(t, "host=db user=app password=secret dbname=developers port=5433 sslmode=disable TimeZone=UTC", dsn)
}

func TestMigrationFilesArePaired(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	for _, base := range []string{"000001_create_developers", "000002_create_audit_logs"} {
		assert.True(t, names[base+".up.sql"], "missing %s.up.sql", base)
		assert.True(t, names[base+".down.sql"], "missing %s.down.sql", base)
	}
}

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	assert.Error(t, MigrateDown("", 0))
}

func TestMigrateUp_UnreachableDatabaseFails(t *testing.T) {
	dsn := DSN(config.DBConfig{
		Host: "127.0.0.1", Port: "1", User: "developer", Name: "developers",
		SSLMode: "disable", TimeZone: "UTC",
	})

	err := MigrateUp(dsn + " connect_timeout=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create migration driver")
}
