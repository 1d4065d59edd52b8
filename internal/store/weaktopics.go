package store

import "context"

// UpsertWeakTopic inserts a weak topic at the front of the log, replacing
// any existing entry with the same Key. The log keeps the newest
// maxLogEntries entries.
func (s *Store) UpsertWeakTopic(ctx context.Context, topic WeakTopic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var topics []WeakTopic
	if err := s.getJSON(ctx, keyWeakTopics, &topics); err != nil {
		return err
	}

	next := make([]WeakTopic, 0, len(topics)+1)
	next = append(next, topic)
	for _, existing := range topics {
		if existing.Key != topic.Key {
			next = append(next, existing)
		}
	}
	if len(next) > maxLogEntries {
		next = next[:maxLogEntries]
	}

	return s.putJSON(ctx, keyWeakTopics, next)
}

// WeakTopics returns all tracked weak topics, newest first.
func (s *Store) WeakTopics(ctx context.Context) ([]WeakTopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var topics []WeakTopic
	if err := s.getJSON(ctx, keyWeakTopics, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// Reset clears every typed log. The llm_requests table survives reset.
func (s *Store) Reset(ctx context.Context) error {
	return s.deleteKeys(ctx, keyAttempts, keyReviews, keyWeakTopics)
}
