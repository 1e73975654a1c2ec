package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/collegemonitor/monitor-api/internal/models"
	"github.com/collegemonitor/monitor-api/internal/observability"
	"github.com/collegemonitor/monitor-api/internal/repository"
	"github.com/collegemonitor/monitor-api/internal/source"
)

// SyncSummary reports the outcome of one full pass over the roster.
type SyncSummary struct {
	TotalFetched      int
	StudentsProcessed int
	Errors            []string
}

// Message renders the administrator-facing flash message for the run.
func (s SyncSummary) Message() string {
	if s.TotalFetched > 0 {
		return fmt.Sprintf("Successfully fetched %d activities from %d students.", s.TotalFetched, s.StudentsProcessed)
	}
	return "No new activities were fetched. Please check API configurations."
}

// SyncService runs one synchronous pass over all students, fetching from each
// linked platform and storing the normalized results. Runs are best effort: a
// failed fetch is recorded and skipped, never retried, and concurrent runs are
// not mutually excluded.
type SyncService interface {
	Run(ctx context.Context) (SyncSummary, error)
}

type syncService struct {
	students   repository.StudentRepository
	activities ActivityService
	adapters   []source.Adapter
	delay      time.Duration
	sleep      func(ctx context.Context, d time.Duration)
	tracer     trace.Tracer
	logger     zerolog.Logger
}

// NewSyncService constructs the sync orchestrator. Adapters are invoked in the
// order given, one student at a time.
func NewSyncService(students repository.StudentRepository, activities ActivityService, adapters []source.Adapter, delay time.Duration, logger zerolog.Logger) SyncService {
	return &syncService{
		students:   students,
		activities: activities,
		adapters:   adapters,
		delay:      delay,
		sleep:      sleepContext,
		tracer:     otel.Tracer("github.com/collegemonitor/monitor-api/internal/service/sync"),
		logger:     logger.With().Str("component", "sync_service").Logger(),
	}
}

func (s *syncService) Run(parent context.Context) (SyncSummary, error) {
	ctx, span := s.tracer.Start(parent, "sync.run")
	defer span.End()

	start := time.Now()
	defer func() {
		observability.SyncRunDuration().Observe(time.Since(start).Seconds())
	}()

	students, err := s.students.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load student roster")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SyncSummary{}, fmt.Errorf("load student roster: %w", err)
	}

	summary := SyncSummary{Errors: []string{}}
	for _, student := range students {
		stored := s.syncStudent(ctx, student, &summary)
		summary.TotalFetched += stored
		summary.StudentsProcessed++
		observability.SyncStudentsProcessed().Inc()

		// Fixed pause between students to avoid hammering external APIs.
		s.sleep(ctx, s.delay)
	}

	span.SetAttributes(
		attribute.Int("sync.total_fetched", summary.TotalFetched),
		attribute.Int("sync.students_processed", summary.StudentsProcessed),
		attribute.Int("sync.errors", len(summary.Errors)),
	)

	s.logger.Info().
		Int("total_fetched", summary.TotalFetched).
		Int("students_processed", summary.StudentsProcessed).
		Int("errors", len(summary.Errors)).
		Msg("sync run finished")

	return summary, nil
}

func (s *syncService) syncStudent(ctx context.Context, student models.Student, summary *SyncSummary) int {
	stored := 0
	for _, adapter := range s.adapters {
		identifier := linkedIdentifier(student, adapter.Source())
		if identifier == "" {
			continue
		}

		events, err := adapter.Fetch(ctx, identifier)
		if err != nil {
			observability.SyncFetchFailures().WithLabelValues(string(adapter.Source())).Inc()
			summary.Errors = append(summary.Errors, fmt.Sprintf("Failed to fetch %s data for %s", adapter.Source(), student.Name))
			continue
		}

		count, err := s.activities.Store(ctx, student.ID, adapter.Source(), events)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Failed to store %s data for %s", adapter.Source(), student.Name))
			continue
		}

		observability.SyncActivitiesStored().WithLabelValues(string(adapter.Source())).Add(float64(count))
		s.logger.Info().
			Str("source", string(adapter.Source())).
			Str("student", student.Name).
			Int("stored", count).
			Msg("stored activities")
		stored += count
	}

	return stored
}

// linkedIdentifier returns the student's handle for the platform, or an empty
// string when the platform is not linked.
func linkedIdentifier(student models.Student, src source.Source) string {
	switch src {
	case source.SourceGitHub:
		return student.GithubUsername
	case source.SourceLeetCode:
		return student.LeetcodeUsername
	case source.SourceLinkedIn:
		return student.LinkedinProfile
	default:
		return ""
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
