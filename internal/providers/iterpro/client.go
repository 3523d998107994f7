package iterpro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/soccercentral/roster-service/internal/domain/players"
	"github.com/soccercentral/roster-service/internal/domain/teams"
	"github.com/soccercentral/roster-service/internal/providers"
)

// Config controls how the iterpro client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	SessionURL string
	HTTPClient *http.Client
}

// Client fetches roster and team data from the iterpro API and maps it to
// domain models. It also posts session-establishment requests, which
// callers treat as best-effort.
type Client struct {
	baseURL    string
	apiKey     string
	sessionURL string
	httpClient httpDoer
}

// NewClient constructs an iterpro client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		sessionURL: cfg.SessionURL,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchPlayers retrieves the full roster.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	body, err := c.get(ctx, c.baseURL+playersPath)
	if err != nil {
		return nil, err
	}

	payload, err := decodeRoster(body)
	if err != nil {
		return nil, fmt.Errorf("iterpro: decode players: %w", err)
	}

	roster := make([]players.Player, 0, len(payload))
	for _, p := range payload {
		roster = append(roster, mapPlayer(p))
	}
	return roster, nil
}

// FetchTeams retrieves all teams in one call.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	body, err := c.get(ctx, c.baseURL+teamsPath)
	if err != nil {
		return nil, err
	}

	var payload []teamPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("iterpro: decode teams: %w", err)
	}

	result := make([]teams.Team, 0, len(payload))
	for _, t := range payload {
		result = append(result, mapTeam(t))
	}
	return result, nil
}

// FetchTeam retrieves a single team by id.
func (c *Client) FetchTeam(ctx context.Context, id string) (teams.Team, error) {
	body, err := c.get(ctx, c.baseURL+teamsPath+"/"+url.PathEscape(id))
	if err != nil {
		return teams.Team{}, err
	}

	var payload teamPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return teams.Team{}, fmt.Errorf("iterpro: decode team %s: %w", id, err)
	}
	return mapTeam(payload), nil
}

// EstablishSession posts an authenticated identity to the session
// endpoint. A missing endpoint is not an error; transport and status
// failures are returned for the caller to log and swallow.
func (c *Client) EstablishSession(ctx context.Context, session providers.Session) error {
	if c.sessionURL == "" {
		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sessionURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("iterpro: session endpoint status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   "iterpro",
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("iterpro: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return io.ReadAll(resp.Body)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
