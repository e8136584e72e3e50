package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	Bot     Bot
	Poller  Poller
	Cache   Cache
	Servers Servers
}

type App struct {
	Name      string     `env:"APP_NAME" envDefault:"tradebell"`
	Version   string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	HTTPDebug bool       `env:"HTTP_DEBUG" envDefault:"false"`
}

type Bot struct {
	Token  string `env:"BOT_TOKEN,required"`
	ChatID int64  `env:"BOT_CHAT_ID,required"`
}

type Poller struct {
	Interval     time.Duration `env:"POLL_INTERVAL" envDefault:"1m"`
	AccountsFile string        `env:"ACCOUNTS_FILE" envDefault:"accounts.json"`
}

type Cache struct {
	Path string `env:"ITEM_CACHE_PATH" envDefault:"cache.json"`
}

type Servers struct {
	StatusAddress  string `env:"STATUS_ADDRESS" envDefault:":8080"`
	ProbeAddress   string `env:"PROBE_ADDRESS" envDefault:":8091"`
	MetricsAddress string `env:"METRICS_ADDRESS" envDefault:":9090"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
