package dto

import (
	"encoding/json"
	"time"

	"github.com/collegemonitor/monitor-api/internal/repository"
)

// ActivityListRequest defines filters for browsing the activity log.
type ActivityListRequest struct {
	StudentID uint
	Source    string
	Date      *time.Time
	Limit     int
}

// ActivityResponse serializes one observed activity.
type ActivityResponse struct {
	ID           uint            `json:"id"`
	StudentID    uint            `json:"student_id"`
	StudentName  string          `json:"student_name"`
	Source       string          `json:"source"`
	ActivityData json.RawMessage `json:"activity_data"`
	ActivityType string          `json:"activity_type"`
	ActivityDate time.Time       `json:"activity_date"`
	FetchedAt    time.Time       `json:"fetched_at"`
}

// NewActivityResponse maps a joined activity row into its response form.
func NewActivityResponse(row repository.ActivityWithStudent) ActivityResponse {
	return ActivityResponse{
		ID:           row.ID,
		StudentID:    row.StudentID,
		StudentName:  row.StudentName,
		Source:       row.Source,
		ActivityData: json.RawMessage(row.ActivityData),
		ActivityType: row.ActivityType,
		ActivityDate: row.ActivityDate,
		FetchedAt:    row.FetchedAt,
	}
}

// ActivityListResponse wraps a filtered activity listing.
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
	Total int                `json:"total"`
}
