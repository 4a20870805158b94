package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"go-exchange-rate-client/coinmarketcap"
	"os"
	"time"
)

// PathEnv names the environment variable holding the optional YAML config file
const PathEnv = "RATE_CONFIG_PATH"

type Config struct {
	Exchange Exchange `yaml:"exchange"`
	HTTP     HTTP     `yaml:"http"`
	Log      Log      `yaml:"log"`
}

type Exchange struct {
	// BaseURL defaults to coinmarketcap.DefaultBaseURL
	BaseURL string        `yaml:"base_url" env:"RATE_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"RATE_TIMEOUT" env-default:"5s"`
	Asset   string        `yaml:"asset" env:"RATE_ASSET" env-default:"XMR"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"RATE_HTTP_ADDR" env-default:":8080"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads the file named by RATE_CONFIG_PATH, if set, then applies environment overrides
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv(PathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config file [%v]: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from env: %w", err)
	}

	if cfg.Exchange.BaseURL == "" {
		cfg.Exchange.BaseURL = coinmarketcap.DefaultBaseURL
	}
	return &cfg, nil
}
