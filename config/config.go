// Package config loads the immutable startup configuration.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Telegram Telegram `yaml:"telegram"`
	CBR      CBR      `yaml:"cbr"`
	Binance  Binance  `yaml:"binance"`

	// HTTPTimeout bounds every outbound feed request and the per-query
	// deadline; a dead feed must not hang an inline answer
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT" env-default:"10s"`

	StatsFile string `yaml:"stats_file" env:"STATS_FILE" env-default:"bot_stats.json"`
}

type Telegram struct {
	Token string `yaml:"token" env:"BOT_TOKEN"`
	// AdminID user allowed to call /stats; 0 disables the check
	AdminID int64 `yaml:"admin_id" env:"ADMIN_ID" env-default:"0"`
}

type CBR struct {
	URL string `yaml:"url" env:"CBR_API_URL" env-default:"https://www.cbr.ru/scripts/XML_daily.asp"`
}

type Binance struct {
	URL string `yaml:"url" env:"BINANCE_API_URL" env-default:"https://api.binance.com/api/v3/ticker/price"`
}

// MustLoad reads the config file named by CALC_CONFIG_PATH, or the
// environment when the variable is unset. A .env file is honored if
// present. Exits the process on any failure.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CALC_CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Fatalf("failed to read config file %v: %v\n", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from environment: %v\n", err)
	}

	if cfg.Telegram.Token == "" {
		log.Fatalf("BOT_TOKEN is required\n")
	}

	return &cfg
}
