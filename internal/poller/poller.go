package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/logging"
	"github.com/soccercentral/roster-service/internal/metrics"
	"github.com/soccercentral/roster-service/internal/providers"
)

const defaultInterval = 2 * time.Minute

// Refresher fetches a fresh enriched roster, bypassing cache freshness.
type Refresher interface {
	Refresh(ctx context.Context) ([]players.Player, error)
}

// PlayerSink receives the refreshed roster snapshot.
type PlayerSink interface {
	ReplacePlayers([]players.Player)
}

// TeamSink receives the refreshed teams snapshot.
type TeamSink interface {
	ReplaceTeams([]teams.Team)
}

// Poller refreshes the roster on an interval and swaps the in-memory
// snapshots that the HTTP handlers serve from.
type Poller struct {
	refresher Refresher
	teamSrc   providers.TeamProvider
	playerOut PlayerSink
	teamOut   TeamSink
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(refresher Refresher, teamSrc providers.TeamProvider, playerOut PlayerSink, teamOut TeamSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresher: refresher,
		teamSrc:   teamSrc,
		playerOut: playerOut,
		teamOut:   teamOut,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	roster, err := p.refresher.Refresh(ctx)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("poller refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.playerOut != nil {
		p.playerOut.ReplacePlayers(roster)
	}
	p.refreshTeams(ctx)

	p.recordSuccess(start)
	p.logInfo("poller refreshed roster",
		logging.FieldCount, len(roster),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// refreshTeams is best-effort; a failed team fetch keeps the previous snapshot.
func (p *Poller) refreshTeams(ctx context.Context) {
	if p.teamSrc == nil || p.teamOut == nil {
		return
	}
	items, err := p.teamSrc.FetchTeams(ctx)
	if err != nil {
		p.logError("poller team fetch failed", err)
		return
	}
	if len(items) > 0 {
		p.teamOut.ReplaceTeams(items)
	}
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
