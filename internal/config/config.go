package config

import (
	"errors"

	"github.com/spf13/viper"
)

var ErrMissingChatID = errors.New(
	"error getting PW_TELEGRAM_CHAT_ID: variable must be set when PW_TELEGRAM_TOKEN is provided")

type Config struct {
	Env         string // Env is the current environment: local, dev, prod.
	ListenAddr  string
	StoragePath string
	SiteDomain  string // SiteDomain is the substring every product URL must contain.
	Tg          Telegram
}

type Telegram struct {
	Token  string // Token is a unique telegram bot token; empty disables alerts.
	ChatID int64  // ChatID is the chat that receives target-price alerts.
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
func MustLoad() *Config {
	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("PW")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("LISTEN_ADDR", ":5000")
	viper.SetDefault("STORAGE_PATH", "pricewatch.db")
	viper.SetDefault("SITE_DOMAIN", "techsiro.com")

	if viper.GetString("TELEGRAM_TOKEN") != "" && viper.GetInt64("TELEGRAM_CHAT_ID") == 0 {
		panic(ErrMissingChatID)
	}

	return &Config{
		Env:         viper.GetString("ENV"),
		ListenAddr:  viper.GetString("LISTEN_ADDR"),
		StoragePath: viper.GetString("STORAGE_PATH"),
		SiteDomain:  viper.GetString("SITE_DOMAIN"),
		Tg: Telegram{
			Token:  viper.GetString("TELEGRAM_TOKEN"),
			ChatID: viper.GetInt64("TELEGRAM_CHAT_ID"),
		},
	}
}
