package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, rest, err := GetClientConfig([]string{"tasks", "list"})

	require.NoError(t, err)
	assert.Equal(t, DefaultClientAddress, cfg.Address)
	assert.Equal(t, DefaultClientRequestTimeout, cfg.RequestTimeout)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, []string{"tasks", "list"}, rest)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("CLIENT_ADDRESS", "http://env:8000")
	t.Setenv("CLIENT_TOKEN", "env-token")

	cfg, rest, err := GetClientConfig([]string{"-a", "http://flag:9000", "-request-timeout", "3s", "health"})

	require.NoError(t, err)
	assert.Equal(t, "http://flag:9000", cfg.Address)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"health"}, rest)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	_, _, err := GetClientConfig([]string{"-request-timeout", "soon"})

	assert.Error(t, err)
}
