package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAttemptLogAppendsAndCaps(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 205; i++ {
		err := s.AppendAttempt(ctx, Attempt{
			Subject:      "DBMS",
			Semester:     3,
			PercentTotal: float64(i),
			At:           time.Now(),
		})
		require.NoError(t, err)
	}

	attempts, err := s.Attempts(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 200)

	// Oldest entries dropped, newest last.
	assert.Equal(t, 5.0, attempts[0].PercentTotal)
	assert.Equal(t, 204.0, attempts[199].PercentTotal)
}

func TestReviewItemUpsertDedupesByID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertReviewItem(ctx, ReviewItem{ID: "run1_mcq_0", Question: "old"}))
	require.NoError(t, s.UpsertReviewItem(ctx, ReviewItem{ID: "run1_mcq_1", Question: "other"}))
	require.NoError(t, s.UpsertReviewItem(ctx, ReviewItem{ID: "run1_mcq_0", Question: "new"}))

	items, err := s.ReviewItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Upserted item moved to the front with the replacement content.
	assert.Equal(t, "run1_mcq_0", items[0].ID)
	assert.Equal(t, "new", items[0].Question)
	assert.Equal(t, "run1_mcq_1", items[1].ID)
}

func TestReviewItemCap(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 210; i++ {
		require.NoError(t, s.UpsertReviewItem(ctx, ReviewItem{ID: fmt.Sprintf("run_%d", i)}))
	}

	items, err := s.ReviewItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 200)
	assert.Equal(t, "run_209", items[0].ID)
}

func TestWeakTopicUpsertDedupesByKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertWeakTopic(ctx, WeakTopic{Key: "DBMS__normalization", LastInterval: 3}))
	require.NoError(t, s.UpsertWeakTopic(ctx, WeakTopic{Key: "DBMS__indexing", LastInterval: 3}))
	require.NoError(t, s.UpsertWeakTopic(ctx, WeakTopic{Key: "DBMS__normalization", LastInterval: 6}))

	topics, err := s.WeakTopics(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "DBMS__normalization", topics[0].Key)
	assert.Equal(t, 6, topics[0].LastInterval)
}

func TestResetClearsLogs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendAttempt(ctx, Attempt{Subject: "Maths"}))
	require.NoError(t, s.UpsertReviewItem(ctx, ReviewItem{ID: "x"}))
	require.NoError(t, s.UpsertWeakTopic(ctx, WeakTopic{Key: "k"}))

	require.NoError(t, s.Reset(ctx))

	attempts, err := s.Attempts(ctx)
	require.NoError(t, err)
	assert.Empty(t, attempts)

	items, err := s.ReviewItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	topics, err := s.WeakTopics(ctx)
	require.NoError(t, err)
	assert.Empty(t, topics)
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.AppendLLMRequest(ctx, LLMRequestData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "examgen",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    2500,
		Success:      true,
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM llm_requests`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAttemptRoundTripFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)
	require.NoError(t, s.AppendAttempt(ctx, Attempt{
		PercentTotal:    60,
		Correct:         6,
		Incorrect:       2,
		Skipped:         2,
		Total:           10,
		Subject:         "Operating Systems",
		Semester:        4,
		DurationMinutes: 45,
		At:              at,
	}))

	attempts, err := s.Attempts(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 1)

	got := attempts[0]
	assert.Equal(t, 60.0, got.PercentTotal)
	assert.Equal(t, "Operating Systems", got.Subject)
	assert.Equal(t, 4, got.Semester)
	assert.Equal(t, 45, got.DurationMinutes)
	assert.True(t, got.At.Equal(at))
}
