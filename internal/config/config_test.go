package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONITOR_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "College Monitor API", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, time.Hour, cfg.SessionTTL)
	require.Equal(t, "https://api.github.com", cfg.GitHubAPIBaseURL)
	require.Equal(t, 30*time.Second, cfg.FetchTimeout)
	require.Equal(t, 500*time.Millisecond, cfg.SyncStudentDelay)
	require.Equal(t, 60, cfg.SyncRateLimit)
	require.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("MONITOR_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONITOR_JWT_SECRET", "test-secret")
	t.Setenv("MONITOR_APP_PORT", "9090")
	t.Setenv("MONITOR_GITHUB_API_BASE_URL", "https://github.example.com/api/")
	t.Setenv("MONITOR_SYNC_STUDENT_DELAY", "10ms")
	t.Setenv("MONITOR_SYNC_RATE_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, "https://github.example.com/api", cfg.GitHubAPIBaseURL)
	require.Equal(t, 10*time.Millisecond, cfg.SyncStudentDelay)
	require.Equal(t, 5, cfg.SyncRateLimit)
}

func TestGitHubAuthTokenIgnoresPlaceholder(t *testing.T) {
	require.Empty(t, Config{}.GitHubAuthToken())
	require.Empty(t, Config{GitHubToken: githubTokenPlaceholder}.GitHubAuthToken())
	require.Equal(t, "ghp_real", Config{GitHubToken: "ghp_real"}.GitHubAuthToken())
}

func TestLoadRejectsInvalidDurations(t *testing.T) {
	t.Setenv("MONITOR_JWT_SECRET", "test-secret")
	t.Setenv("MONITOR_SESSION_TTL", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
