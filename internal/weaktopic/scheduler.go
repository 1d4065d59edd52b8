package weaktopic

import (
	"context"
	"time"

	"github.com/sauravjha/bcabuddy/internal/store"
)

// BaseIntervalDays is the review interval assigned to a topic the first
// time it is missed.
const BaseIntervalDays = 3

// Log is the persistence surface the scheduler needs.
type Log interface {
	WeakTopics(ctx context.Context) ([]store.WeakTopic, error)
	UpsertWeakTopic(ctx context.Context, topic store.WeakTopic) error
}

// Scheduler records misses against weak topics and maintains their
// review schedule.
type Scheduler struct {
	log Log
}

// NewScheduler creates a scheduler backed by the given log.
func NewScheduler(log Log) *Scheduler {
	return &Scheduler{log: log}
}

// Record registers a miss for the topic derived from the question. A
// first miss schedules a review BaseIntervalDays out; every repeat miss
// doubles the previous interval. The doubling is deliberately uncapped:
// a topic missed again after a long interval is rescheduled far out
// rather than clamped back.
func (s *Scheduler) Record(ctx context.Context, subject, question, source string, now time.Time) (store.WeakTopic, error) {
	fingerprint := Fingerprint(question)
	key := Key(subject, fingerprint)

	interval := BaseIntervalDays
	existing, err := s.log.WeakTopics(ctx)
	if err != nil {
		return store.WeakTopic{}, err
	}
	for _, t := range existing {
		if t.Key == key {
			last := t.LastInterval
			if last <= 0 {
				last = BaseIntervalDays
			}
			interval = last * 2
			break
		}
	}

	topic := store.WeakTopic{
		Key:          key,
		Topic:        fingerprint,
		Subject:      subject,
		Source:       source,
		LastInterval: interval,
		DueAt:        now.AddDate(0, 0, interval),
		UpdatedAt:    now,
	}
	if err := s.log.UpsertWeakTopic(ctx, topic); err != nil {
		return store.WeakTopic{}, err
	}
	return topic, nil
}

// Due filters topics whose review date has arrived.
func Due(topics []store.WeakTopic, now time.Time) []store.WeakTopic {
	var due []store.WeakTopic
	for _, t := range topics {
		if !t.DueAt.After(now) {
			due = append(due, t)
		}
	}
	return due
}
