package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/soccercentral/roster-service/internal/config"
	"github.com/soccercentral/roster-service/internal/metrics"
	"github.com/soccercentral/roster-service/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{
		Metrics: config.MetricsConfig{Enabled: true},
		Cache:   config.CacheConfig{Dir: t.TempDir()},
	}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, nil, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsSetup(t *testing.T) {
	cfg := config.Config{
		Metrics: config.MetricsConfig{Enabled: false},
		Cache:   config.CacheConfig{Dir: t.TempDir()},
	}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, nil, nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when telemetry is disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()

	cfg := config.Config{
		Metrics: config.MetricsConfig{Enabled: true},
		Cache:   config.CacheConfig{Dir: t.TempDir()},
	}

	srv := newServerWithMetrics(cfg, nil, &testutil.StubProvider{}, nil, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		if err := srv.metricsStop(context.Background()); err != nil {
			t.Fatalf("expected injected shutdown to succeed, got %v", err)
		}
	}
}
