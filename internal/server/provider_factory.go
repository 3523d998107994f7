package server

import (
	"log/slog"
	"time"

	"github.com/soccercentral/roster-service/internal/config"
	"github.com/soccercentral/roster-service/internal/metrics"
	"github.com/soccercentral/roster-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the wrapped provider plus the session seam of the
// underlying client, when it has one. Wrappers do not carry session
// traffic; logins post through the bare client.
func (f providerFactory) build(cfg config.Config) (providers.DataProvider, providers.SessionProvider) {
	base := selectProvider(cfg, f.logger)
	sessions, _ := base.(providers.SessionProvider)
	// Shared rate limiter to respect upstream quota (1/min default if poll interval is shorter).
	limited := providers.NewRateLimitedProvider(base, time.Minute, f.logger)
	wrapped := providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
	return wrapped, sessions
}
