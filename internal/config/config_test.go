package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkarimov/pricewatch/internal/config"
)

func TestMustLoad(t *testing.T) {
	t.Run("error - token without chat id", func(t *testing.T) {
		t.Setenv("PW_TELEGRAM_TOKEN", "telegramToken")
		t.Setenv("PW_TELEGRAM_CHAT_ID", "")

		assert.PanicsWithError(t, config.ErrMissingChatID.Error(), func() {
			config.MustLoad()
		})
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PW_TELEGRAM_TOKEN", "")

		cfg := config.MustLoad()

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, ":5000", cfg.ListenAddr)
		assert.Equal(t, "pricewatch.db", cfg.StoragePath)
		assert.Equal(t, "techsiro.com", cfg.SiteDomain)
		assert.Empty(t, cfg.Tg.Token)
	})

	t.Run("success", func(t *testing.T) {
		t.Setenv("PW_ENV", "local")
		t.Setenv("PW_LISTEN_ADDR", ":8080")
		t.Setenv("PW_STORAGE_PATH", "some/path/to/db")
		t.Setenv("PW_SITE_DOMAIN", "example.com")
		t.Setenv("PW_TELEGRAM_TOKEN", "telegramToken")
		t.Setenv("PW_TELEGRAM_CHAT_ID", "12345")

		cfg := config.MustLoad()

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "some/path/to/db", cfg.StoragePath)
		assert.Equal(t, "example.com", cfg.SiteDomain)
		assert.Equal(t, "telegramToken", cfg.Tg.Token)
		assert.Equal(t, int64(12345), cfg.Tg.ChatID)
	})
}
