package source

import (
	"context"
	"time"
)

// Source identifies an external platform activities are pulled from.
type Source string

const (
	SourceGitHub   Source = "GitHub"
	SourceLeetCode Source = "LeetCode"
	SourceLinkedIn Source = "LinkedIn"
)

// payloadDateLayout is the timestamp format written into serialized payloads.
const payloadDateLayout = "2006-01-02 15:04:05"

// Payload is the source-specific body of a normalized event. Exactly one
// concrete payload type exists per platform so rendering and querying by
// source stays exhaustive at compile time.
type Payload interface {
	PayloadSource() Source
}

// GitHubPayload mirrors the fields kept from a public GitHub event.
type GitHubPayload struct {
	Type   string `json:"type"`
	Repo   string `json:"repo"`
	Date   string `json:"date"`
	Public bool   `json:"public"`
}

// PayloadSource implements Payload.
func (GitHubPayload) PayloadSource() Source { return SourceGitHub }

// LeetCodePayload describes a solved-problem event.
type LeetCodePayload struct {
	Type       string `json:"type"`
	Problem    string `json:"problem"`
	Difficulty string `json:"difficulty"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// PayloadSource implements Payload.
func (LeetCodePayload) PayloadSource() Source { return SourceLeetCode }

// LinkedInPayload describes a post or connection event. Engagement is set on
// posts, Count on connection events.
type LinkedInPayload struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	Date       string `json:"date"`
	Engagement *int   `json:"engagement,omitempty"`
	Count      *int   `json:"count,omitempty"`
}

// PayloadSource implements Payload.
func (LinkedInPayload) PayloadSource() Source { return SourceLinkedIn }

// Event is the platform-agnostic record produced by an adapter before it is
// persisted as an activity.
type Event struct {
	Type    string
	Date    time.Time
	Payload Payload
}

// Adapter converts one external platform's data into normalized events.
//
// Outcome contract: a nil error with events means success, a nil error with
// an empty slice means the platform had nothing for this identifier (for
// example an unknown username), and a non-nil error means the fetch itself
// failed. "No data" is never an error.
type Adapter interface {
	Source() Source
	Fetch(ctx context.Context, identifier string) ([]Event, error)
}
