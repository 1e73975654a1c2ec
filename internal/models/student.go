package models

import "time"

// Student represents a tracked learner and the external accounts linked to them.
type Student struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Email            string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	GithubUsername   string     `gorm:"size:255" json:"github_username"`
	LeetcodeUsername string     `gorm:"size:255" json:"leetcode_username"`
	LinkedinProfile  string     `gorm:"size:512" json:"linkedin_profile"`
	Notes            string     `gorm:"size:2000" json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Activities       []Activity `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
