package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// CacheConfig controls the on-disk roster cache.
type CacheConfig struct {
	Dir string
	TTL time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Dir: envOrDefault(envCacheDir, defaultCacheDir()),
		TTL: durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}

func defaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, "roster-service")
}
