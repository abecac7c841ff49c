package config

import (
	"github.com/caarlos0/env/v11"

	"setsync/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs carry an envPrefix; see the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to the root logger.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	Store configs.Store `envPrefix:"STORE_"`

	Semantic configs.Semantic `envPrefix:"MINIMAX_"`

	Audit configs.Audit `envPrefix:"AUDIT_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	return cfg, nil
}
