package store

import "context"

// UpsertReviewItem inserts a review item at the front of the log,
// replacing any existing item with the same ID. The log keeps the newest
// maxLogEntries items.
func (s *Store) UpsertReviewItem(ctx context.Context, item ReviewItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []ReviewItem
	if err := s.getJSON(ctx, keyReviews, &items); err != nil {
		return err
	}

	next := make([]ReviewItem, 0, len(items)+1)
	next = append(next, item)
	for _, existing := range items {
		if existing.ID != item.ID {
			next = append(next, existing)
		}
	}
	if len(next) > maxLogEntries {
		next = next[:maxLogEntries]
	}

	return s.putJSON(ctx, keyReviews, next)
}

// ReviewItems returns all review items, newest first.
func (s *Store) ReviewItems(ctx context.Context) ([]ReviewItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []ReviewItem
	if err := s.getJSON(ctx, keyReviews, &items); err != nil {
		return nil, err
	}
	return items, nil
}
