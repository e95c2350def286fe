package observability

import (
	"context"
	"net/http"

	"github.com/honeynil/DepositWithdrawService/internal/config"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup initializes logs, metrics and traces and returns the tracer shutdown hook and the
// metrics handler.
func Setup(ctx context.Context, serviceName string, cfg *config.Config) (func(context.Context) error, http.Handler) {
	observability.InitLogger(cfg.LogLevel)
	observability.InitMetrics()
	tracerShutdown := observability.InitTracing(ctx, serviceName, cfg.OTLPEndpoint)
	return tracerShutdown, promhttp.Handler()
}
