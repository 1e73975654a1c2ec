package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/collegemonitor/monitor-api/internal/dto"
	"github.com/collegemonitor/monitor-api/internal/repository"
)

const dashboardCacheKey = "dashboard:roster"

// recentActivityWindow bounds the per-source counts shown on the dashboard.
const recentActivityWindow = 7 * 24 * time.Hour

// DashboardService produces the aggregated roster summary shown after login.
type DashboardService interface {
	GetDashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	students repository.StudentRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewDashboardService builds the dashboard aggregator. A nil cache client
// disables caching entirely.
func NewDashboardService(students repository.StudentRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &dashboardService{
		students: students,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
		now:      time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (dto.DashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	since := s.now().Add(-recentActivityWindow)
	summaries, err := s.students.ListSummaries(ctx, since)
	if err != nil {
		return dto.DashboardResponse{}, fmt.Errorf("load roster summaries: %w", err)
	}

	response := s.buildResponse(summaries)

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) buildResponse(summaries []repository.StudentSummary) dto.DashboardResponse {
	students := make([]dto.DashboardStudent, 0, len(summaries))
	var totalActivities int64

	for _, summary := range summaries {
		totalActivities += summary.GithubActivities + summary.LeetcodeActivities + summary.LinkedinActivities
		students = append(students, dto.DashboardStudent{
			ID:                 summary.Student.ID,
			Name:               summary.Student.Name,
			Email:              summary.Student.Email,
			GithubUsername:     summary.Student.GithubUsername,
			LeetcodeUsername:   summary.Student.LeetcodeUsername,
			LinkedinProfile:    summary.Student.LinkedinProfile,
			GithubActivities:   summary.GithubActivities,
			LeetcodeActivities: summary.LeetcodeActivities,
			LinkedinActivities: summary.LinkedinActivities,
			LastUpdated:        summary.LastUpdated,
		})
	}

	return dto.DashboardResponse{
		Students:        students,
		TotalStudents:   len(students),
		TotalActivities: totalActivities,
		GeneratedAt:     s.now().UTC(),
	}
}
