package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/logging"
	"github.com/soccercentral/roster-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior and
// per-attempt metrics.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var result []players.Player
	err := r.attempt(ctx, "players", func(ctx context.Context) error {
		var err error
		result, err = r.inner.FetchPlayers(ctx)
		return err
	})
	return result, err
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var result []teams.Team
	err := r.attempt(ctx, "teams", func(ctx context.Context) error {
		var err error
		result, err = r.inner.FetchTeams(ctx)
		return err
	})
	return result, err
}

// FetchTeam is not retried: it only runs on the enrichment fallback path,
// which already degrades each id to a placeholder on failure.
func (r *retryingProvider) FetchTeam(ctx context.Context, id string) (teams.Team, error) {
	start := time.Now()
	team, err := r.inner.FetchTeam(ctx, id)
	r.record(start, err)
	return team, err
}

// Close forwards to the wrapped provider when it holds resources.
func (r *retryingProvider) Close() {
	if closer, ok := r.inner.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (r *retryingProvider) attempt(ctx context.Context, what string, fn func(context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := fn(ctx)
		r.record(start, err)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "what", what, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "what", what, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingProvider) record(start time.Time, err error) {
	if r.recorder == nil {
		return
	}
	r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
	if rl, ok := AsRateLimitError(err); ok {
		r.recorder.RecordRateLimit(r.name, rl.RetryAfter)
	}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
