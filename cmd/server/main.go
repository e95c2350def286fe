package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/honeynil/DepositWithdrawService/internal/api"
	"github.com/honeynil/DepositWithdrawService/internal/config"
	"github.com/honeynil/DepositWithdrawService/internal/handler"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/auth"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/kafka"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/mail"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/rabbitmq"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/redis"
	"github.com/honeynil/DepositWithdrawService/internal/notification"
	"github.com/honeynil/DepositWithdrawService/internal/observability"
	core "github.com/honeynil/DepositWithdrawService/internal/repository/postgres"
	"github.com/honeynil/DepositWithdrawService/internal/scheduler"
	service "github.com/honeynil/DepositWithdrawService/internal/services"
	_ "github.com/lib/pq"
)

const serviceName = "deposit-withdraw-service"

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем логи, метрики, трейсы
	shutdownTracing, metricsHandler := observability.Setup(ctx, serviceName, cfg)
	defer shutdownTracing(context.Background())

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		slog.Warn("unknown display timezone, using UTC", "timezone", cfg.DisplayTimezone, "error", err)
		loc = time.UTC
	}

	// Подключаемся к Postgres
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		slog.Error("failed to open Postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		slog.Error("failed to connect to Postgres", "error", err)
		os.Exit(1)
	}
	if err := core.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to prepare schema", "error", err)
		os.Exit(1)
	}

	transactionRepo := core.NewPostgresTransactionRepository(db)
	userRepo := core.NewPostgresUserRepository(db)
	channelRepo := core.NewPostgresChannelRepository(db)

	// Redis only backs the submission limiter, so the service runs without it.
	var limiterStore redis.RedisClient
	if redisClient, err := redis.NewClient(ctx, cfg.RedisAddr); err != nil {
		slog.Warn("rate limiting disabled", "error", err)
	} else {
		limiterStore = redisClient
		defer redisClient.Close()
	}

	var events rabbitmq.EventPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			slog.Warn("RabbitMQ unavailable, domain events disabled", "error", err)
		} else {
			events = producer
		}
	}
	defer events.Close()

	// Уведомления: SMTP + очередь повторов в Kafka
	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.MailFrom,
	})
	retryProducer := kafka.NewProducer(cfg.KafkaBrokers)
	defer retryProducer.Close()

	renderer := notification.NewRenderer(cfg.MailLocale, loc)
	dispatcher := notification.NewDispatcher(mailer, retryProducer, renderer, notification.Config{
		RetryTopic: cfg.NotifyRetryTopic,
		Timeout:    cfg.NotifyTimeout,
	})

	retryConsumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.NotifyRetryTopic, cfg.NotifyConsumerGroup)
	defer retryConsumer.Close()
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		retryConsumer.Consume(ctx, notification.NewRetryConsumer(mailer, retryProducer, cfg.NotifyRetryTopic, cfg.NotifyMaxAttempts, cfg.NotifyTimeout))
	}()

	// Инициализируем сервисы
	txService := service.NewTransactionService(transactionRepo, userRepo, dispatcher, events, loc)
	userService := service.NewUserService(userRepo)
	channelService := service.NewChannelService(channelRepo)
	aggregator := service.NewAggregator(transactionRepo, loc)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	jobs := scheduler.New(slog.Default(), 5*time.Minute)
	if err := jobs.Add("pending-digest", cfg.PendingDigestSchedule, service.NewPendingDigest(transactionRepo, dispatcher, cfg.PendingDigestAge)); err != nil {
		slog.Warn("pending digest disabled", "error", err)
	}
	jobs.Start()

	// Настраиваем роутер
	h := handler.NewHandler(txService, aggregator, userService, channelService, tokens, handler.CookieConfig{
		Secure: cfg.Production(),
		TTL:    cfg.JWTTTL,
	})
	router := api.SetupRouter(api.Dependencies{
		Handler:        h,
		Verifier:       tokens,
		Roles:          userService,
		Redis:          limiterStore,
		SubmitLimit:    cfg.SubmitRateLimit,
		SubmitWindow:   cfg.SubmitRateWindow,
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        metricsHandler,
	})

	// Запускаем сервер
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	<-jobs.Stop().Done()
	if err := txService.WaitNotifications(shutdownCtx); err != nil {
		slog.Warn("notifications still in flight at shutdown", "error", err)
	}
	<-consumerDone
	slog.Info("server stopped")
}
