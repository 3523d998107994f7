package config

const (
	envIterproBaseURL = "ITERPRO_BASE_URL"
	envIterproAPIKey  = "ITERPRO_API_KEY"
	envSessionURL     = "SESSION_ENDPOINT"

	defaultIterproBaseURL = "https://api.iterpro.com/api/v1"
)

// IterproConfig controls how we talk to the iterpro players API.
type IterproConfig struct {
	BaseURL    string
	APIKey     string
	SessionURL string // session-establishment endpoint; empty disables the post-login call
}

func loadIterpro() IterproConfig {
	return IterproConfig{
		BaseURL:    envOrDefault(envIterproBaseURL, defaultIterproBaseURL),
		APIKey:     envOrDefault(envIterproAPIKey, ""),
		SessionURL: envOrDefault(envSessionURL, ""),
	}
}
