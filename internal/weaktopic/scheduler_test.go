package weaktopic

import (
	"context"
	"testing"
	"time"

	"github.com/sauravjha/bcabuddy/internal/store"
)

// memLog is an in-memory Log with the same upsert semantics as the store.
type memLog struct {
	topics []store.WeakTopic
}

func (m *memLog) WeakTopics(_ context.Context) ([]store.WeakTopic, error) {
	return m.topics, nil
}

func (m *memLog) UpsertWeakTopic(_ context.Context, topic store.WeakTopic) error {
	next := []store.WeakTopic{topic}
	for _, t := range m.topics {
		if t.Key != topic.Key {
			next = append(next, t)
		}
	}
	m.topics = next
	return nil
}

func TestFingerprint(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"What is the third normal form in DBMS design", "What is the third normal form"},
		{"Short question", "Short question"},
		{"  padded   spacing   between   words   one   two   three ", "padded spacing between words one two"},
		{"", "general"},
		{"   ", "general"},
	}
	for _, tc := range cases {
		if got := Fingerprint(tc.in); got != tc.want {
			t.Errorf("Fingerprint(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKey(t *testing.T) {
	if got, want := Key("DBMS", "third normal form"), "DBMS__third normal form"; got != want {
		t.Errorf("Key = %q, want %q", got, want)
	}
}

func TestRecordIntervalDoubling(t *testing.T) {
	log := &memLog{}
	sched := NewScheduler(log)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	question := "Explain two phase locking in transactions"

	// First miss: 3 days. Repeats: 6, then 12.
	for _, wantInterval := range []int{3, 6, 12} {
		topic, err := sched.Record(ctx, "DBMS", question, "exam-mcq", now)
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		if topic.LastInterval != wantInterval {
			t.Errorf("LastInterval = %d, want %d", topic.LastInterval, wantInterval)
		}
		wantDue := now.AddDate(0, 0, wantInterval)
		if !topic.DueAt.Equal(wantDue) {
			t.Errorf("DueAt = %v, want %v", topic.DueAt, wantDue)
		}
	}

	if len(log.topics) != 1 {
		t.Errorf("len(topics) = %d, want 1 (upsert by key)", len(log.topics))
	}
}

func TestRecordSeparateSubjectsSeparateKeys(t *testing.T) {
	log := &memLog{}
	sched := NewScheduler(log)
	ctx := context.Background()
	now := time.Now()

	question := "Explain deadlock detection and recovery"
	if _, err := sched.Record(ctx, "DBMS", question, "exam-mcq", now); err != nil {
		t.Fatal(err)
	}
	if _, err := sched.Record(ctx, "Operating Systems", question, "exam-mcq", now); err != nil {
		t.Fatal(err)
	}

	if len(log.topics) != 2 {
		t.Errorf("len(topics) = %d, want 2", len(log.topics))
	}
	for _, topic := range log.topics {
		if topic.LastInterval != BaseIntervalDays {
			t.Errorf("LastInterval = %d, want %d for first miss", topic.LastInterval, BaseIntervalDays)
		}
	}
}

func TestRecordRecoversFromZeroInterval(t *testing.T) {
	log := &memLog{topics: []store.WeakTopic{{
		Key:          Key("Maths", "general"),
		LastInterval: 0,
	}}}
	sched := NewScheduler(log)

	topic, err := sched.Record(context.Background(), "Maths", "", "exam-mcq", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if topic.LastInterval != BaseIntervalDays*2 {
		t.Errorf("LastInterval = %d, want %d", topic.LastInterval, BaseIntervalDays*2)
	}
}

func TestDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	topics := []store.WeakTopic{
		{Key: "a", DueAt: now.AddDate(0, 0, -1)}, // overdue
		{Key: "b", DueAt: now},                   // due right now
		{Key: "c", DueAt: now.AddDate(0, 0, 2)},  // not yet
	}

	due := Due(topics, now)
	if len(due) != 2 {
		t.Fatalf("len(Due) = %d, want 2", len(due))
	}
	if due[0].Key != "a" || due[1].Key != "b" {
		t.Errorf("Due order = %s, %s; want a, b", due[0].Key, due[1].Key)
	}
}
