package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the parser services
type Config struct {
	// Network settings
	Network struct {
		Type      string `mapstructure:"type"`      // main, test
		JungleBus string `mapstructure:"junglebus"` // JungleBus URL
	} `mapstructure:"network"`

	// Raw transaction cache
	Cache struct {
		Redis string        `mapstructure:"redis"` // redis URL, empty disables the cache
		TTL   time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`

	// Parser settings
	Parse struct {
		Preset      string `mapstructure:"preset"`
		MaxDepth    int    `mapstructure:"max_depth"`
		Concurrency int    `mapstructure:"concurrency"`
		Verbose     bool   `mapstructure:"verbose"`
	} `mapstructure:"parse"`

	// Server settings
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
}

// SetDefaults sets viper defaults for parser configuration.
// When used as an embedded library, pass a prefix to namespace the config.
func (c *Config) SetDefaults(v *viper.Viper, prefix string) {
	p := ""
	if prefix != "" {
		p = prefix + "."
	}

	v.SetDefault(p+"network.type", "main")
	v.SetDefault(p+"network.junglebus", "https://junglebus.gorillapool.io")

	v.SetDefault(p+"cache.redis", "")
	v.SetDefault(p+"cache.ttl", 24*time.Hour)

	v.SetDefault(p+"parse.preset", "bob")
	v.SetDefault(p+"parse.max_depth", 64)
	v.SetDefault(p+"parse.concurrency", 8)
	v.SetDefault(p+"parse.verbose", false)

	v.SetDefault(p+"server.port", 8080)
}

// Load reads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - ./config.yaml
//   - ~/.bpu/config.yaml
//   - /etc/bpu/config.yaml
//
// Environment variables override config file values with prefix "BPU_".
// Example: BPU_CACHE_REDIS=redis://localhost:6379 overrides cache.redis
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

func LoadWith(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.SetDefaults(v, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.bpu")
	v.AddConfigPath("/etc/bpu")

	v.SetEnvPrefix("BPU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars and defaults can provide everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}
