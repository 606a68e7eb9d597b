package bootstrap

import (
	"strings"
	"testing"

	"developer-service/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDatabase_ErrorIsWrappedOnce(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Env: "production"},
		DB: config.DBConfig{
			Host: "127.0.0.1", Port: "1", User: "developer", Name: "developers",
			SSLMode: "disable", TimeZone: "UTC",
		},
	}

	db, err := ConnectDatabase(cfg)
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Equal(t, 1, strings.Count(err.Error(), "failed to connect to database"))
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	SetupLogger("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	_, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	SetupLogger("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
