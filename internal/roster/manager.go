package roster

import (
	"context"
	"log/slog"
	"time"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/localstore"
	"github.com/soccercentral/roster-service/internal/logging"
	"github.com/soccercentral/roster-service/internal/metrics"
	"github.com/soccercentral/roster-service/internal/providers"
)

const defaultTTL = 5 * time.Minute

// Manager owns the time-boxed roster cache and its staleness policy.
// Fresh entries are served directly; stale entries are kept only as a
// fallback when the upstream fetch fails; corrupt entries are purged the
// moment they are detected.
type Manager struct {
	provider providers.DataProvider
	store    localstore.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	ttl      time.Duration
	now      func() time.Time
}

// NewManager constructs a Manager. A non-positive ttl falls back to the
// five-minute freshness window.
func NewManager(provider providers.DataProvider, store localstore.Store, logger *slog.Logger, recorder *metrics.Recorder, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{
		provider: provider,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		ttl:      ttl,
		now:      time.Now,
	}
}

// LoadRoster returns the current roster, preferring a fresh cache entry,
// then the upstream API, then a stale cache entry as a last resort. Every
// returned roster has team info attached.
func (m *Manager) LoadRoster(ctx context.Context) ([]players.Player, error) {
	cached := readEntry(m.store)

	if cached.fresh(m.now(), m.ttl) {
		roster, err := cached.decode()
		if err == nil {
			m.recordCache("fresh")
			return m.enrichWithTeamInfo(ctx, roster), nil
		}
		// Corrupt while fresh: purge and behave as a miss.
		m.recordCache("corrupt")
		logging.Warn(m.logger, "purging corrupt roster cache entry", "error", err)
		purgeEntry(m.store)
		cached = entry{}
	}

	roster, fetchErr := m.provider.FetchPlayers(ctx)
	if fetchErr == nil {
		m.recordCache("miss")
		m.persist(roster)
		return m.enrichWithTeamInfo(ctx, roster), nil
	}

	// Upstream down: an expired entry is still better than nothing,
	// provided it decodes to a non-empty roster.
	if fallback, err := cached.decode(); err == nil {
		m.recordCache("stale_fallback")
		logging.Warn(m.logger, "serving stale roster after fetch failure", "error", fetchErr, logging.FieldCount, len(fallback))
		return m.enrichWithTeamInfo(ctx, fallback), nil
	} else if cached.payload != "" {
		purgeEntry(m.store)
	}

	m.recordCache("failure")
	return nil, fetchErr
}

// Refresh bypasses the cache read, fetches upstream and rewrites the
// cache entry. Used by the background poller to keep the entry warm.
func (m *Manager) Refresh(ctx context.Context) ([]players.Player, error) {
	roster, err := m.provider.FetchPlayers(ctx)
	if err != nil {
		return nil, err
	}
	m.persist(roster)
	return m.enrichWithTeamInfo(ctx, roster), nil
}

// persist is best-effort: a failed write is logged, never fatal.
func (m *Manager) persist(roster []players.Player) {
	if len(roster) == 0 {
		return
	}
	if err := writeEntry(m.store, roster, m.now()); err != nil {
		logging.Warn(m.logger, "failed to persist roster cache entry", "error", err)
	}
}

func (m *Manager) recordCache(state string) {
	if m.metrics != nil {
		m.metrics.RecordCacheLookup(state)
	}
}
