package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	require.Equal(t, "data/biocat.db", cfg.Database.Path)
	require.Equal(t, "Anahi", cfg.Auth.Username)
	require.Equal(t, "2025", cfg.Auth.Password)
	require.Equal(t, 720, cfg.Auth.TokenTTLMinutes)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BIOCAT_SERVER_ADDR", "0.0.0.0:9090")
	t.Setenv("BIOCAT_AUTH_JWTSECRET", "supersecret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9090", cfg.Server.Addr)
	require.Equal(t, "supersecret", cfg.Auth.JWTSecret)
}
