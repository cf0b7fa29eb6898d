package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Display        string        // X-дисплей для отправки событий
	LogLevel       string        // уровень логирования zerolog
	ClickDelay     time.Duration // пауза между перемещением и кликом
	TelegramToken  string        // токен бота для уведомлений (необязательно)
	TelegramChatID int64         // чат для уведомлений
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Display:       os.Getenv("DISPLAY"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	if raw := os.Getenv("MARKER_CLICK_DELAY"); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil || delay < 0 {
			return nil, fmt.Errorf("invalid MARKER_CLICK_DELAY %q", raw)
		}
		cfg.ClickDelay = delay
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
		cfg.TelegramChatID = id
	}

	return cfg, nil
}

// NotificationsEnabled сообщает, заданы ли токен и чат Telegram.
func (c *Config) NotificationsEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
