package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	githubUserAgent  = "CollegeMonitorApp/1.0"
	githubAccept     = "application/vnd.github.v3+json"
	githubMaxEvents  = 10
	githubFieldUnset = "Unknown"
)

// ErrGitHubRateLimited marks a fetch rejected by the GitHub API rate limit.
var ErrGitHubRateLimited = fmt.Errorf("github api rate limit exceeded")

// GitHubConfig defines configuration options for the GitHub adapter.
type GitHubConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// GitHubAdapter pulls recent public events for a username from the GitHub API.
type GitHubAdapter struct {
	client *resty.Client
	token  string
	tracer trace.Tracer
	logger zerolog.Logger
	now    func() time.Time
}

// NewGitHubAdapter builds the adapter from the provided configuration.
func NewGitHubAdapter(cfg GitHubConfig, logger zerolog.Logger) *GitHubAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.github.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", githubUserAgent).
		SetHeader("Accept", githubAccept)

	return &GitHubAdapter{
		client: client,
		token:  cfg.Token,
		tracer: otel.Tracer("github.com/collegemonitor/monitor-api/internal/source/github"),
		logger: logger.With().Str("component", "github_adapter").Logger(),
		now:    time.Now,
	}
}

// Source implements Adapter.
func (a *GitHubAdapter) Source() Source { return SourceGitHub }

// githubEvent is the subset of the GitHub events payload the monitor keeps.
type githubEvent struct {
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt string `json:"created_at"`
	Public    *bool  `json:"public"`
}

// Fetch retrieves the most recent public events for the given username.
func (a *GitHubAdapter) Fetch(parent context.Context, identifier string) ([]Event, error) {
	ctx, span := a.tracer.Start(parent, "github.fetch", trace.WithAttributes(
		attribute.String("github.username", identifier),
	))
	defer span.End()

	req := a.client.R().SetContext(ctx)
	if a.token != "" {
		req.SetHeader("Authorization", "token "+a.token)
	}

	resp, err := req.Get(fmt.Sprintf("/users/%s/events/public", url.PathEscape(identifier)))
	if err != nil {
		a.logger.Error().Err(err).Str("username", identifier).Msg("github request failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("github fetch for %s: %w", identifier, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	switch resp.StatusCode() {
	case http.StatusOK:
		return a.parseEvents(identifier, resp.Body())
	case http.StatusNotFound:
		// Unknown user: not a failure, just nothing to store.
		a.logger.Info().Str("username", identifier).Msg("github user not found")
		return []Event{}, nil
	case http.StatusForbidden:
		a.logger.Warn().Str("username", identifier).Msg("github api rate limit exceeded")
		span.SetStatus(codes.Error, ErrGitHubRateLimited.Error())
		return nil, fmt.Errorf("github fetch for %s: %w", identifier, ErrGitHubRateLimited)
	default:
		err := fmt.Errorf("github fetch for %s: unexpected status %d", identifier, resp.StatusCode())
		a.logger.Error().Int("status", resp.StatusCode()).Str("username", identifier).Msg("github api error")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
}

func (a *GitHubAdapter) parseEvents(identifier string, body []byte) ([]Event, error) {
	var raw []githubEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		a.logger.Error().Err(err).Str("username", identifier).Msg("github response is not a json array")
		return nil, fmt.Errorf("github fetch for %s: decode response: %w", identifier, err)
	}

	if len(raw) > githubMaxEvents {
		raw = raw[:githubMaxEvents]
	}

	events := make([]Event, 0, len(raw))
	for _, entry := range raw {
		events = append(events, a.normalize(entry))
	}

	return events, nil
}

func (a *GitHubAdapter) normalize(entry githubEvent) Event {
	eventType := entry.Type
	if eventType == "" {
		eventType = githubFieldUnset
	}

	repo := entry.Repo.Name
	if repo == "" {
		repo = githubFieldUnset
	}

	date := a.now()
	if entry.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, entry.CreatedAt); err == nil {
			date = parsed
		}
	}

	public := true
	if entry.Public != nil {
		public = *entry.Public
	}

	return Event{
		Type: eventType,
		Date: date,
		Payload: GitHubPayload{
			Type:   eventType,
			Repo:   repo,
			Date:   date.Format(payloadDateLayout),
			Public: public,
		},
	}
}
