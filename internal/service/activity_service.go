package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/collegemonitor/monitor-api/internal/dto"
	"github.com/collegemonitor/monitor-api/internal/models"
	"github.com/collegemonitor/monitor-api/internal/repository"
	"github.com/collegemonitor/monitor-api/internal/source"
)

const unknownActivityType = "Unknown"

// ActivityService lists stored activities and persists normalized events.
type ActivityService interface {
	List(ctx context.Context, req dto.ActivityListRequest) (dto.ActivityListResponse, error)
	Store(ctx context.Context, studentID uint, src source.Source, events []source.Event) (int, error)
}

type activityService struct {
	repo   repository.ActivityRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewActivityService constructs the activity service.
func NewActivityService(repo repository.ActivityRepository, logger zerolog.Logger) ActivityService {
	return &activityService{
		repo:   repo,
		logger: logger.With().Str("component", "activity_service").Logger(),
		now:    time.Now,
	}
}

func (s *activityService) List(ctx context.Context, req dto.ActivityListRequest) (dto.ActivityListResponse, error) {
	filter := repository.ActivityFilter{
		StudentID:   req.StudentID,
		Source:      req.Source,
		FetchedDate: req.Date,
		Limit:       req.Limit,
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list activities")
		return dto.ActivityListResponse{}, err
	}

	items := make([]dto.ActivityResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NewActivityResponse(row))
	}

	return dto.ActivityListResponse{Items: items, Total: len(items)}, nil
}

// Store persists one row per normalized event and returns the number of rows
// written. An insert failure on a single event is logged and skipped; it never
// aborts the rest of the batch.
func (s *activityService) Store(ctx context.Context, studentID uint, src source.Source, events []source.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	stored := 0
	for _, event := range events {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			s.logger.Error().Err(err).
				Uint("student_id", studentID).
				Str("source", string(src)).
				Msg("failed to serialize activity payload")
			continue
		}

		activityType := event.Type
		if activityType == "" {
			activityType = unknownActivityType
		}

		activityDate := event.Date
		if activityDate.IsZero() {
			activityDate = s.now()
		}

		activity := models.Activity{
			StudentID:    studentID,
			Source:       string(src),
			ActivityData: datatypes.JSON(payload),
			ActivityType: activityType,
			ActivityDate: activityDate,
		}

		if err := s.repo.Create(ctx, &activity); err != nil {
			s.logger.Error().Err(err).
				Uint("student_id", studentID).
				Str("source", string(src)).
				Msg("failed to insert activity")
			continue
		}

		stored++
	}

	return stored, nil
}
