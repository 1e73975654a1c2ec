package dto

import (
	"time"

	"github.com/collegemonitor/monitor-api/internal/models"
)

// StudentCreateRequest carries the fields for a new roster entry.
type StudentCreateRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=255"`
	Email            string `json:"email" validate:"required,email"`
	GithubUsername   string `json:"github_username" validate:"omitempty,max=255"`
	LeetcodeUsername string `json:"leetcode_username" validate:"omitempty,max=255"`
	LinkedinProfile  string `json:"linkedin_profile" validate:"omitempty,url,max=512"`
	Notes            string `json:"notes" validate:"omitempty,max=2000"`
}

// StudentUpdateRequest captures partial update payloads for students.
type StudentUpdateRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email            *string `json:"email" validate:"omitempty,email"`
	GithubUsername   *string `json:"github_username" validate:"omitempty,max=255"`
	LeetcodeUsername *string `json:"leetcode_username" validate:"omitempty,max=255"`
	LinkedinProfile  *string `json:"linkedin_profile" validate:"omitempty,url,max=512"`
	Notes            *string `json:"notes" validate:"omitempty,max=2000"`
}

// StudentResponse serializes a roster entry.
type StudentResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	GithubUsername   string    `json:"github_username"`
	LeetcodeUsername string    `json:"leetcode_username"`
	LinkedinProfile  string    `json:"linkedin_profile"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewStudentResponse maps a student model into its response form.
func NewStudentResponse(student models.Student) StudentResponse {
	return StudentResponse{
		ID:               student.ID,
		Name:             student.Name,
		Email:            student.Email,
		GithubUsername:   student.GithubUsername,
		LeetcodeUsername: student.LeetcodeUsername,
		LinkedinProfile:  student.LinkedinProfile,
		Notes:            student.Notes,
		CreatedAt:        student.CreatedAt,
		UpdatedAt:        student.UpdatedAt,
	}
}

// StudentListResponse wraps the full roster.
type StudentListResponse struct {
	Items []StudentResponse `json:"items"`
	Total int               `json:"total"`
}
