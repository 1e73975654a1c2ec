package source

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLeetCodeAdapterAlwaysReturnsTwoEvents(t *testing.T) {
	adapter := NewLeetCodeAdapter(zerolog.Nop())
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	adapter.now = func() time.Time { return now }
	adapter.rng = rand.New(rand.NewSource(1))

	events, err := adapter.Fetch(context.Background(), "ada")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, SourceLeetCode, adapter.Source())

	first, ok := events[0].Payload.(LeetCodePayload)
	require.True(t, ok)
	require.Equal(t, "Problem Solved", first.Type)
	require.Equal(t, "Two Sum", first.Problem)
	require.Equal(t, "Easy", first.Difficulty)
	require.Equal(t, "Accepted", first.Status)
	require.True(t, events[0].Date.After(now.AddDate(0, 0, -8)))
	require.True(t, events[0].Date.Before(now))

	second, ok := events[1].Payload.(LeetCodePayload)
	require.True(t, ok)
	require.Equal(t, "Add Two Numbers", second.Problem)
	require.Equal(t, "Medium", second.Difficulty)
	require.True(t, events[1].Date.After(now.AddDate(0, 0, -15)))
	require.True(t, events[1].Date.Before(now))
}

func TestLinkedInAdapterAlwaysReturnsTwoEvents(t *testing.T) {
	adapter := NewLinkedInAdapter(zerolog.Nop())
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	adapter.now = func() time.Time { return now }
	adapter.rng = rand.New(rand.NewSource(1))

	events, err := adapter.Fetch(context.Background(), "https://linkedin.com/in/ada")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, SourceLinkedIn, adapter.Source())

	post, ok := events[0].Payload.(LinkedInPayload)
	require.True(t, ok)
	require.Equal(t, "Post", post.Type)
	require.NotNil(t, post.Engagement)
	require.GreaterOrEqual(t, *post.Engagement, 5)
	require.LessOrEqual(t, *post.Engagement, 50)
	require.Nil(t, post.Count)
	require.True(t, events[0].Date.After(now.AddDate(0, 0, -6)))

	connection, ok := events[1].Payload.(LinkedInPayload)
	require.True(t, ok)
	require.Equal(t, "Connection", connection.Type)
	require.NotNil(t, connection.Count)
	require.GreaterOrEqual(t, *connection.Count, 1)
	require.LessOrEqual(t, *connection.Count, 5)
	require.Nil(t, connection.Engagement)
	require.True(t, events[1].Date.After(now.AddDate(0, 0, -11)))
}

func TestMockEventsVaryAcrossRuns(t *testing.T) {
	adapter := NewLeetCodeAdapter(zerolog.Nop())
	adapter.rng = rand.New(rand.NewSource(7))

	first, err := adapter.Fetch(context.Background(), "ada")
	require.NoError(t, err)
	second, err := adapter.Fetch(context.Background(), "ada")
	require.NoError(t, err)

	// Shape is fixed, recency is randomized per call.
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	require.Equal(t, first[0].Type, second[0].Type)
}
