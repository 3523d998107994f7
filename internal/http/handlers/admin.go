package handlers

import (
	"log/slog"
	"net/http"
	"os"

	appplayers "github.com/soccercentral/roster-service/internal/app/players"
	"github.com/soccercentral/roster-service/internal/http/requestutil"
	"github.com/soccercentral/roster-service/internal/logging"
	"github.com/soccercentral/roster-service/internal/roster"
)

// AdminHandler exposes admin-only endpoints (e.g., forced roster refresh).
type AdminHandler struct {
	manager *roster.Manager
	players *appplayers.Service
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(manager *roster.Manager, players *appplayers.Service, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		manager: manager,
		players: players,
		token:   token,
		logger:  logger,
	}
}

// RefreshRoster fetches a fresh roster from the provider, bypassing the
// cache freshness window, and swaps the in-memory snapshot.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshRoster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.manager == nil {
		writeError(w, r, http.StatusServiceUnavailable, "roster manager not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	refreshed, err := h.manager.Refresh(r.Context())
	if err != nil {
		logging.Warn(logger, "admin roster refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to refresh roster", logger)
		return
	}
	if h.players != nil {
		h.players.ReplacePlayers(refreshed)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"players": len(refreshed),
		"status":  "ok",
	}, logger)
	logging.Info(logger, "admin roster refreshed", slog.Int("count", len(refreshed)))
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
