package dto

import "time"

// DashboardStudent summarises one student's recent activity across platforms.
type DashboardStudent struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	GithubUsername     string     `json:"github_username"`
	LeetcodeUsername   string     `json:"leetcode_username"`
	LinkedinProfile    string     `json:"linkedin_profile"`
	GithubActivities   int64      `json:"github_activities"`
	LeetcodeActivities int64      `json:"leetcode_activities"`
	LinkedinActivities int64      `json:"linkedin_activities"`
	LastUpdated        *time.Time `json:"last_updated,omitempty"`
}

// DashboardResponse is the aggregated roster view shown after login.
type DashboardResponse struct {
	Students        []DashboardStudent `json:"students"`
	TotalStudents   int                `json:"total_students"`
	TotalActivities int64              `json:"total_activities"`
	GeneratedAt     time.Time          `json:"generated_at"`
}
