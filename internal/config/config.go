package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Config struct {
	DashboardAPIURL  string
	DashboardAPIKey  string
	TelegramBotToken string
	AdminChatID      int64
	RedisURL         string

	AlertPollSecs       int
	UpstreamTimeoutSecs int
	WhaleDisplayLimit   int
	AlertHistoryLimit   int

	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		DashboardAPIURL:  strings.TrimRight(strings.TrimSpace(os.Getenv("DASHBOARD_API_URL")), "/"),
		DashboardAPIKey:  strings.TrimSpace(os.Getenv("DASHBOARD_API_KEY")),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		RedisURL:         os.Getenv("REDIS_URL"),
	}

	if cfg.DashboardAPIURL == "" {
		log.Warn().Msg("DASHBOARD_API_URL not set, every section will use fallback sample data")
	}
	if cfg.TelegramBotToken == "" {
		log.Warn().Msg("TELEGRAM_BOT_TOKEN not set, bot and alert dispatch will be disabled")
	}
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	if v := strings.TrimSpace(os.Getenv("ADMIN_CHAT_ID")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.AdminChatID = n
		} else {
			log.Warn().Str("value", v).Msg("ADMIN_CHAT_ID is not a valid chat id, alert dispatch disabled")
		}
	}

	cfg.AlertPollSecs = 300
	if v := os.Getenv("ALERT_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AlertPollSecs = n
		}
	}

	cfg.UpstreamTimeoutSecs = 8
	if v := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UpstreamTimeoutSecs = n
		}
	}

	cfg.WhaleDisplayLimit = 10
	if v := strings.TrimSpace(os.Getenv("WHALE_DISPLAY_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WhaleDisplayLimit = n
		}
	}

	cfg.AlertHistoryLimit = 100
	if v := strings.TrimSpace(os.Getenv("ALERT_HISTORY_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AlertHistoryLimit = n
		}
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}
