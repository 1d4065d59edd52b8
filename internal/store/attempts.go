package store

import "context"

// AppendAttempt records a finalized attempt at the end of the log. The
// log keeps the newest maxLogEntries attempts, oldest first.
func (s *Store) AppendAttempt(ctx context.Context, a Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var attempts []Attempt
	if err := s.getJSON(ctx, keyAttempts, &attempts); err != nil {
		return err
	}

	attempts = append(attempts, a)
	if len(attempts) > maxLogEntries {
		attempts = attempts[len(attempts)-maxLogEntries:]
	}

	return s.putJSON(ctx, keyAttempts, attempts)
}

// Attempts returns all recorded attempts, oldest first.
func (s *Store) Attempts(ctx context.Context) ([]Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var attempts []Attempt
	if err := s.getJSON(ctx, keyAttempts, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}
