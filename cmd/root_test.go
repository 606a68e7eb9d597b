package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"developer-service/config"
	"developer-service/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "token"}, names)

	migrate, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.Equal(t, "1", migrate.Flags().Lookup("steps").DefValue)
}

func TestTokenCommand_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	root := newRootCommand()
	root.SetArgs([]string{"token", "--subject", "ops"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestTokenCommand_PrintsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	var out bytes.Buffer
	root := newRootCommand()
	root.SetArgs([]string{"token", "--subject", "ops@example.com", "--ttl", "1h"})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	require.NoError(t, root.Execute())

	service := jwt.NewJWTService(config.JWTConfig{Secret: "cli-secret", AccessExpiry: time.Minute})
	claims, err := service.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
