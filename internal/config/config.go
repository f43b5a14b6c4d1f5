package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the weather tool service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port for the tool/monitoring HTTP server.
// - UserAgent: The User-Agent header sent to every upstream service.
// - Provider: Geocoding provider selection and credentials.
// - Geocoder: Geocoding endpoint configuration.
// - Weather: National Weather Service endpoint configuration.
type Config struct {
	Env       string         `mapstructure:"env"`
	Port      int            `mapstructure:"port"`
	UserAgent string         `mapstructure:"user_agent"`
	Provider  ProviderConfig `mapstructure:"provider"`
	Geocoder  UpstreamConfig `mapstructure:"geocoder"`
	Weather   UpstreamConfig `mapstructure:"weather"`
}

// ProviderConfig selects which geocoding provider to use and carries its credentials.
type ProviderConfig struct {
	Type   string `mapstructure:"type"`    // "nominatim" or "google"
	APIKey string `mapstructure:"api_key"` // required for Google
}

// UpstreamConfig holds the base URL and per-call timeout of one external service.
type UpstreamConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from an optional .env file, an optional YAML
// config file, and NIMBUS_-prefixed environment variables. Every key has
// a default, so a bare environment is a valid one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.SetConfigName("config")
	vpr.SetConfigType("yaml")
	vpr.AddConfigPath(".")
	vpr.AddConfigPath("./config")
	if path := os.Getenv("NIMBUS_CONFIG"); path != "" {
		vpr.SetConfigFile(path)
	}

	vpr.SetDefault("env", "production")
	vpr.SetDefault("port", 8080)
	vpr.SetDefault("user_agent", "weather-app/1.0")
	vpr.SetDefault("provider.type", "nominatim")
	vpr.SetDefault("provider.api_key", "")
	vpr.SetDefault("geocoder.url", "https://nominatim.openstreetmap.org/search")
	vpr.SetDefault("geocoder.timeout", "10s")
	vpr.SetDefault("weather.url", "https://api.weather.gov")
	vpr.SetDefault("weather.timeout", "30s")

	vpr.SetEnvPrefix("NIMBUS")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	if err := vpr.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := vpr.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Addr returns the listen address of the tool server in the ":port" form.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
