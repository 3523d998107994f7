package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	appplayers "github.com/soccercentral/roster-service/internal/app/players"
	appteams "github.com/soccercentral/roster-service/internal/app/teams"
	"github.com/soccercentral/roster-service/internal/auth"
	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/localstore"
	"github.com/soccercentral/roster-service/internal/logging"
	"github.com/soccercentral/roster-service/internal/metrics"
	"github.com/soccercentral/roster-service/internal/poller"
	"github.com/soccercentral/roster-service/internal/providers"
	"github.com/soccercentral/roster-service/internal/roster"
)

var errNoManager = errors.New("roster manager not configured")

// Handler wires HTTP routes to the roster services.
type Handler struct {
	players  *appplayers.Service
	teams    *appteams.Service
	manager  *roster.Manager
	sessions providers.SessionProvider
	local    localstore.Store
	recorder *metrics.Recorder
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(players *appplayers.Service, teams *appteams.Service, manager *roster.Manager, opts ...Option) *Handler {
	h := &Handler{
		players: players,
		teams:   teams,
		manager: manager,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Option customizes optional Handler collaborators.
type Option func(*Handler)

// WithSessions attaches a backend session provider used after successful logins.
func WithSessions(sessions providers.SessionProvider) Option {
	return func(h *Handler) { h.sessions = sessions }
}

// WithLocalStore attaches the persistent key-value store used for UI state.
func WithLocalStore(store localstore.Store) Option {
	return func(h *Handler) { h.local = store }
}

// WithRecorder attaches the metrics recorder.
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(h *Handler) { h.recorder = recorder }
}

// WithLogger attaches the base logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) { h.logger = logger }
}

// WithStatus attaches the poller status used by the readiness probe.
func WithStatus(statusFn func() poller.Status) Option {
	return func(h *Handler) { h.statusFn = statusFn }
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a player email against the roster. Authentication
// failures are part of the response body, not HTTP errors; only a body
// that fails to decode earns a 400.
func (h *Handler) Login(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", logger)
		return
	}

	result := auth.Authenticate(h.roster(r.Context()), req.Email, req.Password)
	h.recordAuth(result)

	if result.Success && result.User != nil {
		h.establishSession(r.Context(), logger, result.User)
		logging.Info(logger, "login succeeded",
			slog.String(logging.FieldPlayerID, result.User.PlayerID),
			slog.String(logging.FieldLoginName, result.User.Username),
		)
	} else {
		logging.Warn(logger, "login failed",
			slog.String("reason", string(result.Kind)),
		)
	}

	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// Players returns the current roster, optionally filtered by ?search=.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	term := r.URL.Query().Get("search")
	h.rememberSearchTerm(logger, term)

	result := h.players.Search(term)
	if len(result) == 0 && term == "" {
		// Empty in-memory snapshot; fall back to the cache-or-fetch path.
		if loaded, err := h.loadRoster(r.Context()); err == nil {
			result = loaded
		}
	}

	logging.Info(logger, "served roster", slog.Int("count", len(result)))
	writeJSON(w, nethttp.StatusOK, map[string]any{"players": result}, h.logger)
}

// PlayerByID returns a specific player if present.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := pathID(r.URL.Path, "/players")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	player, found := h.players.PlayerByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

// Teams returns the known teams.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": h.teams.Teams()}, h.logger)
}

// TeamByID returns a specific team if present.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := pathID(r.URL.Path, "/teams")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	team, found := h.teams.TeamByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// roster returns the player set used for login resolution, preferring the
// cache manager so freshness rules apply even before the poller has run.
func (h *Handler) roster(ctx context.Context) []players.Player {
	if loaded, err := h.loadRoster(ctx); err == nil && len(loaded) > 0 {
		return loaded
	}
	if h.players != nil {
		return h.players.Players()
	}
	return nil
}

func (h *Handler) loadRoster(ctx context.Context) ([]players.Player, error) {
	if h.manager == nil {
		return nil, errNoManager
	}
	return h.manager.LoadRoster(ctx)
}

func (h *Handler) establishSession(ctx context.Context, logger *slog.Logger, user *auth.Identity) {
	if h.sessions == nil {
		return
	}
	session := providers.Session{
		UserID:   user.PlayerID,
		Name:     user.Name,
		Username: user.Username,
		Role:     user.Role,
	}
	if err := h.sessions.EstablishSession(ctx, session); err != nil {
		logging.Warn(logger, "session establishment failed", slog.Any("err", err))
	}
}

func (h *Handler) rememberSearchTerm(logger *slog.Logger, term string) {
	if h.local == nil {
		return
	}
	term = strings.TrimSpace(term)
	if term == "" {
		h.local.Remove(localstore.KeySearchTerm)
		return
	}
	if err := h.local.Set(localstore.KeySearchTerm, term); err != nil {
		logging.Warn(logger, "failed to persist search term", slog.Any("err", err))
	}
}

func (h *Handler) recordAuth(result auth.Result) {
	if h.recorder == nil {
		return
	}
	outcome := "success"
	if !result.Success {
		outcome = string(result.Kind)
	}
	h.recorder.RecordAuthAttempt(outcome)
}

func pathID(path, prefix string) (string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == "" || rest == "/" {
		return "", false
	}
	id, err := url.PathUnescape(strings.TrimPrefix(rest, "/"))
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		return "", false
	}
	return id, true
}
