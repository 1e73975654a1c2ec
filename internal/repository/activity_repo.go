package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/collegemonitor/monitor-api/internal/models"
)

// DefaultActivityLimit bounds activity listings when no limit is requested.
const DefaultActivityLimit = 50

// ActivityFilter narrows activity log queries.
type ActivityFilter struct {
	StudentID   uint
	Source      string
	FetchedDate *time.Time
	Limit       int
}

// ActivityWithStudent joins an activity row with the owning student's name.
type ActivityWithStudent struct {
	models.Activity
	StudentName string
}

// ActivityRepository persists activities observed during sync runs.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	List(ctx context.Context, filter ActivityFilter) ([]ActivityWithStudent, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository constructs the activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) List(ctx context.Context, filter ActivityFilter) ([]ActivityWithStudent, error) {
	query := r.db.WithContext(ctx).Model(&models.Activity{}).
		Select("activities.*, students.name AS student_name").
		Joins("JOIN students ON students.id = activities.student_id")

	if filter.StudentID > 0 {
		query = query.Where("activities.student_id = ?", filter.StudentID)
	}

	if filter.Source != "" {
		query = query.Where("activities.source = ?", filter.Source)
	}

	if filter.FetchedDate != nil {
		dayStart := filter.FetchedDate.Truncate(24 * time.Hour)
		query = query.Where("activities.fetched_at >= ? AND activities.fetched_at < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	var rows []ActivityWithStudent
	err := query.Order("activities.fetched_at DESC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
