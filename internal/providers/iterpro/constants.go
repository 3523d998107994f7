package iterpro

import "time"

const (
	defaultBaseURL     = "https://api.iterpro.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second

	playersPath = "/players"
	teamsPath   = "/teams"
)
