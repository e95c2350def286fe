package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	PostgresDSN string
	RedisAddr   string

	KafkaBrokers        []string
	NotifyRetryTopic    string
	NotifyConsumerGroup string
	NotifyMaxAttempts   int
	NotifyTimeout       time.Duration

	RabbitMQURL    string
	EventsExchange string

	JWTSecret      string
	JWTTTL         time.Duration
	AllowedOrigins []string

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	MailFrom   string
	MailLocale string

	DisplayTimezone string

	SubmitRateLimit  int
	SubmitRateWindow time.Duration

	PendingDigestSchedule string
	PendingDigestAge      time.Duration

	OTLPEndpoint string
}

// Production reports whether cookies must be sent cross-site (Secure, SameSite=None).
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file, using environment and defaults", "error", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=ledger sslmode=disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("NOTIFY_RETRY_TOPIC", "notifications.retry")
	v.SetDefault("NOTIFY_CONSUMER_GROUP", "ledger-notification-retry")
	v.SetDefault("NOTIFY_MAX_ATTEMPTS", 5)
	v.SetDefault("NOTIFY_TIMEOUT", "30s")
	v.SetDefault("EVENTS_EXCHANGE", "ledger.events")
	v.SetDefault("JWT_SECRET", "supersecret")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_LOCALE", "en")
	v.SetDefault("DISPLAY_TIMEZONE", "Asia/Dhaka")
	v.SetDefault("SUBMIT_RATE_LIMIT", 10)
	v.SetDefault("SUBMIT_RATE_WINDOW", "1m")
	v.SetDefault("PENDING_DIGEST_SCHEDULE", "@every 1h")
	v.SetDefault("PENDING_DIGEST_AGE", "2h")

	// Unset keys without a default are only visible to AutomaticEnv once bound.
	for _, key := range []string{"RABBITMQ_URL", "SMTP_USER", "SMTP_PASS", "MAIL_FROM", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		_ = v.BindEnv(key)
	}

	cfg := &Config{
		Port:                  v.GetString("PORT"),
		Environment:           v.GetString("ENVIRONMENT"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		PostgresDSN:           v.GetString("POSTGRES_DSN"),
		RedisAddr:             v.GetString("REDIS_ADDR"),
		KafkaBrokers:          splitList(v.GetString("KAFKA_BROKERS")),
		NotifyRetryTopic:      v.GetString("NOTIFY_RETRY_TOPIC"),
		NotifyConsumerGroup:   v.GetString("NOTIFY_CONSUMER_GROUP"),
		NotifyMaxAttempts:     v.GetInt("NOTIFY_MAX_ATTEMPTS"),
		NotifyTimeout:         v.GetDuration("NOTIFY_TIMEOUT"),
		RabbitMQURL:           v.GetString("RABBITMQ_URL"),
		EventsExchange:        v.GetString("EVENTS_EXCHANGE"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTTTL:                v.GetDuration("JWT_TTL"),
		AllowedOrigins:        splitList(v.GetString("ALLOWED_ORIGINS")),
		SMTPHost:              v.GetString("SMTP_HOST"),
		SMTPPort:              v.GetInt("SMTP_PORT"),
		SMTPUser:              v.GetString("SMTP_USER"),
		SMTPPass:              v.GetString("SMTP_PASS"),
		MailFrom:              v.GetString("MAIL_FROM"),
		MailLocale:            v.GetString("MAIL_LOCALE"),
		DisplayTimezone:       v.GetString("DISPLAY_TIMEZONE"),
		SubmitRateLimit:       v.GetInt("SUBMIT_RATE_LIMIT"),
		SubmitRateWindow:      v.GetDuration("SUBMIT_RATE_WINDOW"),
		PendingDigestSchedule: v.GetString("PENDING_DIGEST_SCHEDULE"),
		PendingDigestAge:      v.GetDuration("PENDING_DIGEST_AGE"),
		OTLPEndpoint:          v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}
	if cfg.JWTSecret == "supersecret" {
		slog.Warn("JWT_SECRET not set, using insecure default")
	}

	slog.Info("config loaded",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"redis_addr", cfg.RedisAddr,
		"kafka_brokers", cfg.KafkaBrokers,
		"rabbitmq_enabled", cfg.RabbitMQURL != "",
		"display_timezone", cfg.DisplayTimezone)
	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
