package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	TelegramBotToken string
	WebhookURL       string

	// Empty GeminiAPIKey is allowed: the model path then reports itself
	// unavailable and the bot runs on the token scanner alone.
	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	// AdminUserID gates menu edits. Zero disables them.
	AdminUserID int64
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt64(k string, def int64) int64 {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("ignoring bad %s=%q", k, v)
	}
	return def
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		TelegramBotToken: mustEnv("TELEGRAM_BOT_TOKEN"),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LLMTimeout:   time.Duration(getEnvInt64("LLM_TIMEOUT_MS", 8000)) * time.Millisecond,

		AdminUserID: getEnvInt64("ADMIN_USER_ID", 0),
	}
}
