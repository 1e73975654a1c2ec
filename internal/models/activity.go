package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity captures one observed event from one external platform for one
// student. Rows are written by sync runs only and never updated; the payload
// shape depends on the source, so consumers decode ActivityData per source.
type Activity struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	StudentID    uint           `gorm:"not null;index" json:"student_id"`
	Source       string         `gorm:"size:32;not null;index" json:"source"`
	ActivityData datatypes.JSON `gorm:"type:json" json:"activity_data"`
	ActivityType string         `gorm:"size:64" json:"activity_type"`
	ActivityDate time.Time      `json:"activity_date"`
	FetchedAt    time.Time      `gorm:"autoCreateTime;index" json:"fetched_at"`
}
