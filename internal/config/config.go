package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// githubTokenPlaceholder matches the sample value shipped in .env.example;
// while it is configured, calls to the GitHub API stay unauthenticated.
const githubTokenPlaceholder = "your_github_token_here"

// Config holds runtime configuration values for the monitor service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	SessionTTL        time.Duration
	GitHubToken       string
	GitHubAPIBaseURL  string
	FetchTimeout      time.Duration
	SyncStudentDelay  time.Duration
	SyncRateLimit     int
	DashboardCacheTTL time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// GitHubAuthToken returns the configured GitHub token, or an empty string
// when none (or only the sample placeholder) is configured.
func (c Config) GitHubAuthToken() string {
	if c.GitHubToken == "" || c.GitHubToken == githubTokenPlaceholder {
		return ""
	}
	return c.GitHubToken
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MONITOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "College Monitor API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("session.ttl", "1h")
	v.SetDefault("github.api_base_url", "https://api.github.com")
	v.SetDefault("fetch.timeout", "30s")
	v.SetDefault("sync.student_delay", "500ms")
	v.SetDefault("sync.rate_limit", 60)
	v.SetDefault("dashboard.cache_ttl", "5m")

	sessionTTL, err := time.ParseDuration(v.GetString("session.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid session ttl: %w", err)
	}

	fetchTimeout, err := time.ParseDuration(v.GetString("fetch.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid fetch timeout: %w", err)
	}

	studentDelay, err := time.ParseDuration(v.GetString("sync.student_delay"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid sync student delay: %w", err)
	}

	cacheTTL, err := time.ParseDuration(v.GetString("dashboard.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		JWTSecret:         v.GetString("jwt.secret"),
		SessionTTL:        sessionTTL,
		GitHubToken:       v.GetString("github.token"),
		GitHubAPIBaseURL:  strings.TrimRight(v.GetString("github.api_base_url"), "/"),
		FetchTimeout:      fetchTimeout,
		SyncStudentDelay:  studentDelay,
		SyncRateLimit:     v.GetInt("sync.rate_limit"),
		DashboardCacheTTL: cacheTTL,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.SyncRateLimit <= 0 {
		cfg.SyncRateLimit = 60
	}

	return cfg, nil
}
