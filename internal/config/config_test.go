package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/greyskies/nimbus/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "weather-app/1.0", cfg.UserAgent)
	assert.Equal(t, "nominatim", cfg.Provider.Type)
	assert.Empty(t, cfg.Provider.APIKey)
	assert.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.Geocoder.URL)
	assert.Equal(t, 10*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, "https://api.weather.gov", cfg.Weather.URL)
	assert.Equal(t, 30*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("NIMBUS_ENV", "local")
	t.Setenv("NIMBUS_PORT", "9090")
	t.Setenv("NIMBUS_USER_AGENT", "nimbus-test/0.1")
	t.Setenv("NIMBUS_PROVIDER_TYPE", "google")
	t.Setenv("NIMBUS_PROVIDER_API_KEY", "testAPIKey")
	t.Setenv("NIMBUS_GEOCODER_TIMEOUT", "2s")
	t.Setenv("NIMBUS_WEATHER_URL", "https://nws.example.test")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "nimbus-test/0.1", cfg.UserAgent)
	assert.Equal(t, "google", cfg.Provider.Type)
	assert.Equal(t, "testAPIKey", cfg.Provider.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, "https://nws.example.test", cfg.Weather.URL)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_ConfigFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
env: development
port: 9191
provider:
  type: google
  api_key: from-file
`)
	t.Setenv("NIMBUS_CONFIG", file.Name())

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "google", cfg.Provider.Type)
	assert.Equal(t, "from-file", cfg.Provider.APIKey)
	// Untouched keys keep their defaults.
	assert.Equal(t, "https://api.weather.gov", cfg.Weather.URL)
}

func TestLoad_BrokenConfigFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `env: [unterminated`)
	t.Setenv("NIMBUS_CONFIG", file.Name())

	cfg, err := config.Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
}
