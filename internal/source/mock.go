package source

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// MockAdapter stands in for platforms without an implemented integration. It
// returns deterministically shaped events with randomized recency so the rest
// of the pipeline can be exercised end to end. Swapping in a genuine
// integration later is a drop-in Adapter implementation.
type MockAdapter struct {
	source   Source
	generate func(now time.Time, rng *rand.Rand) []Event
	logger   zerolog.Logger
	now      func() time.Time
	rng      *rand.Rand
}

// Source implements Adapter.
func (a *MockAdapter) Source() Source { return a.source }

// Fetch implements Adapter. Mock fetches always succeed.
func (a *MockAdapter) Fetch(_ context.Context, identifier string) ([]Event, error) {
	a.logger.Info().
		Str("identifier", identifier).
		Msg("using mock data, integration not implemented")

	return a.generate(a.now(), a.rng), nil
}

// NewLeetCodeAdapter builds the mock stand-in for the LeetCode integration.
// There is no public LeetCode API, so every fetch yields two synthetic
// solved-problem events dated one to fourteen days back.
func NewLeetCodeAdapter(logger zerolog.Logger) *MockAdapter {
	return &MockAdapter{
		source:   SourceLeetCode,
		generate: leetCodeEvents,
		logger:   logger.With().Str("component", "leetcode_adapter").Logger(),
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewLinkedInAdapter builds the mock stand-in for the LinkedIn integration.
// LinkedIn activity requires official API access, so every fetch yields one
// synthetic post and one connection event.
func NewLinkedInAdapter(logger zerolog.Logger) *MockAdapter {
	return &MockAdapter{
		source:   SourceLinkedIn,
		generate: linkedInEvents,
		logger:   logger.With().Str("component", "linkedin_adapter").Logger(),
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func leetCodeEvents(now time.Time, rng *rand.Rand) []Event {
	first := daysBack(now, rng, 7)
	second := daysBack(now, rng, 14)

	return []Event{
		{
			Type: "Problem Solved",
			Date: first,
			Payload: LeetCodePayload{
				Type:       "Problem Solved",
				Problem:    "Two Sum",
				Difficulty: "Easy",
				Date:       first.Format(payloadDateLayout),
				Status:     "Accepted",
			},
		},
		{
			Type: "Problem Solved",
			Date: second,
			Payload: LeetCodePayload{
				Type:       "Problem Solved",
				Problem:    "Add Two Numbers",
				Difficulty: "Medium",
				Date:       second.Format(payloadDateLayout),
				Status:     "Accepted",
			},
		},
	}
}

func linkedInEvents(now time.Time, rng *rand.Rand) []Event {
	postDate := daysBack(now, rng, 5)
	connectionDate := daysBack(now, rng, 10)
	engagement := 5 + rng.Intn(46)
	count := 1 + rng.Intn(5)

	return []Event{
		{
			Type: "Post",
			Date: postDate,
			Payload: LinkedInPayload{
				Type:       "Post",
				Content:    "Shared an article about web development",
				Date:       postDate.Format(payloadDateLayout),
				Engagement: &engagement,
			},
		},
		{
			Type: "Connection",
			Date: connectionDate,
			Payload: LinkedInPayload{
				Type:    "Connection",
				Content: "Connected with industry professionals",
				Date:    connectionDate.Format(payloadDateLayout),
				Count:   &count,
			},
		},
	}
}

// daysBack returns now shifted one to maxDays days into the past.
func daysBack(now time.Time, rng *rand.Rand, maxDays int) time.Time {
	days := 1 + rng.Intn(maxDays)
	return now.AddDate(0, 0, -days)
}
