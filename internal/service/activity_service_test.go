package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/collegemonitor/monitor-api/internal/dto"
	"github.com/collegemonitor/monitor-api/internal/models"
	"github.com/collegemonitor/monitor-api/internal/repository"
	"github.com/collegemonitor/monitor-api/internal/source"
)

type memoryActivityRepo struct {
	activities []models.Activity
	failNext   int
}

func (m *memoryActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	if m.failNext > 0 {
		m.failNext--
		return fmt.Errorf("insert failed")
	}
	activity.ID = uint(len(m.activities) + 1)
	if activity.FetchedAt.IsZero() {
		activity.FetchedAt = time.Now()
	}
	m.activities = append(m.activities, *activity)
	return nil
}

func (m *memoryActivityRepo) List(_ context.Context, filter repository.ActivityFilter) ([]repository.ActivityWithStudent, error) {
	rows := make([]repository.ActivityWithStudent, 0, len(m.activities))
	for _, activity := range m.activities {
		if filter.StudentID > 0 && activity.StudentID != filter.StudentID {
			continue
		}
		if filter.Source != "" && activity.Source != filter.Source {
			continue
		}
		rows = append(rows, repository.ActivityWithStudent{Activity: activity, StudentName: "Student"})
	}
	return rows, nil
}

func TestActivityServiceStoreEmptyListIsNoop(t *testing.T) {
	repo := &memoryActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	stored, err := svc.Store(context.Background(), 1, source.SourceGitHub, nil)
	require.NoError(t, err)
	require.Zero(t, stored)
	require.Empty(t, repo.activities)
}

func TestActivityServiceStoreSerializesPayloads(t *testing.T) {
	repo := &memoryActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	date := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	events := []source.Event{
		{
			Type: "PushEvent",
			Date: date,
			Payload: source.GitHubPayload{
				Type:   "PushEvent",
				Repo:   "ada/lovelace",
				Date:   "2026-08-20 10:30:00",
				Public: true,
			},
		},
	}

	stored, err := svc.Store(context.Background(), 7, source.SourceGitHub, events)
	require.NoError(t, err)
	require.Equal(t, 1, stored)
	require.Len(t, repo.activities, 1)

	activity := repo.activities[0]
	require.Equal(t, uint(7), activity.StudentID)
	require.Equal(t, "GitHub", activity.Source)
	require.Equal(t, "PushEvent", activity.ActivityType)
	require.Equal(t, date, activity.ActivityDate)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(activity.ActivityData, &payload))
	require.Equal(t, "ada/lovelace", payload["repo"])
	require.Equal(t, true, payload["public"])
}

func TestActivityServiceStoreDefaultsTypeAndDate(t *testing.T) {
	repo := &memoryActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop()).(*activityService)
	fixedNow := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	events := []source.Event{
		{Payload: source.GitHubPayload{Type: "Unknown", Repo: "Unknown", Public: true}},
	}

	stored, err := svc.Store(context.Background(), 1, source.SourceGitHub, events)
	require.NoError(t, err)
	require.Equal(t, 1, stored)
	require.Equal(t, "Unknown", repo.activities[0].ActivityType)
	require.Equal(t, fixedNow, repo.activities[0].ActivityDate)
}

func TestActivityServiceStoreSkipsFailedInserts(t *testing.T) {
	repo := &memoryActivityRepo{failNext: 1}
	svc := NewActivityService(repo, zerolog.Nop())

	events := []source.Event{
		{Type: "PushEvent", Date: time.Now(), Payload: source.GitHubPayload{Type: "PushEvent"}},
		{Type: "WatchEvent", Date: time.Now(), Payload: source.GitHubPayload{Type: "WatchEvent"}},
	}

	stored, err := svc.Store(context.Background(), 1, source.SourceGitHub, events)
	require.NoError(t, err)
	require.Equal(t, 1, stored, "the failed insert is skipped, not fatal")
	require.Len(t, repo.activities, 1)
	require.Equal(t, "WatchEvent", repo.activities[0].ActivityType)
}

func TestActivityServiceListMapsRows(t *testing.T) {
	repo := &memoryActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	_, err := svc.Store(context.Background(), 3, source.SourceLeetCode, []source.Event{
		{Type: "Problem Solved", Date: time.Now(), Payload: source.LeetCodePayload{Type: "Problem Solved", Problem: "Two Sum"}},
	})
	require.NoError(t, err)

	response, err := svc.List(context.Background(), dto.ActivityListRequest{StudentID: 3, Source: "LeetCode"})
	require.NoError(t, err)
	require.Equal(t, 1, response.Total)
	require.Equal(t, "Problem Solved", response.Items[0].ActivityType)
	require.Equal(t, uint(3), response.Items[0].StudentID)
}
