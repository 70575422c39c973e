package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"WARDLINE_ENV" env-default:"local"`
	Registry   `yaml:"registry"`
	HTTPServer `yaml:"http_server"`
}

type Registry struct {
	Path string `yaml:"path" env:"WARDLINE_REGISTRY" env-default:"wardline.db"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"WARDLINE_BIND" env-default:"localhost:7450"`
	StoreTimeout time.Duration `yaml:"store_timeout" env-default:"5s"`
	StatsTTL     time.Duration `yaml:"stats_ttl" env-default:"30s"`
}

// Load reads the yaml file at path, or only the environment when path is
// empty. The signing secret is deliberately not part of this struct, it
// never touches a config file.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("unable to read config from environment, cause %w", err)
		}
		return &cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %v not found, cause %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("unable to load config %v, cause %w", path, err)
	}
	return &cfg, nil
}
