package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/keshon/btf-bot/internal/boterr"
)

// Env is the process environment the bot starts with.
type Env struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	ConfigPath   string `env:"CONFIG_PATH" envDefault:"conf.toml"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"LOG_FILE"`
}

// LoadEnv reads an optional .env file and parses the environment.
// A missing DISCORD_TOKEN is an error.
func LoadEnv() (*Env, error) {
	// no .env is fine, the system environment is used as is
	_ = godotenv.Load()

	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, boterr.IO("read environment", err)
	}
	return &e, nil
}
