package server

import (
	"log/slog"

	"github.com/soccercentral/roster-service/internal/config"
	"github.com/soccercentral/roster-service/internal/providers"
	"github.com/soccercentral/roster-service/internal/providers/fixture"
	"github.com/soccercentral/roster-service/internal/providers/iterpro"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "iterpro":
		return iterpro.NewClient(iterpro.Config{
			BaseURL:    cfg.Iterpro.BaseURL,
			APIKey:     cfg.Iterpro.APIKey,
			SessionURL: cfg.Iterpro.SessionURL,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
