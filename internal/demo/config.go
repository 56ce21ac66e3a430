package demo

import "github.com/caarlos0/env/v11"

// Config holds the demo server settings, read from the environment.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"WAYFARE_ADDR" envDefault:":8090"`

	// BaseHref is the path prefix the app is mounted under.
	BaseHref string `env:"WAYFARE_BASE_HREF" envDefault:""`

	// HashBased serves fragment-style URLs instead of real paths.
	HashBased bool `env:"WAYFARE_HASH_BASED" envDefault:"false"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `env:"WAYFARE_METRICS" envDefault:"true"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
