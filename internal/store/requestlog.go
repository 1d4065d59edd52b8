package store

import (
	"context"
	"fmt"
	"time"
)

// LLMRequestData captures one LLM API call for the request log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// RequestLog provides append access to the LLM request log. The logging
// middleware depends on this interface, not on Store.
type RequestLog interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error
}

// AppendLLMRequest records an LLM API call in the llm_requests table.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
		data.RequestBody, data.ResponseBody)
	if err != nil {
		return fmt.Errorf("save LLM request: %w", err)
	}
	return nil
}

// LLMRequestRecord is a stored request-log row.
type LLMRequestRecord struct {
	ID           int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequests returns the most recent request-log rows, newest first.
// A limit of 0 returns everything.
func (s *Store) LLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	query := `SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body
	          FROM llm_requests ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}
	defer rows.Close()

	var records []LLMRequestRecord
	for rows.Next() {
		var r LLMRequestRecord
		var createdAt string
		var success int
		if err := rows.Scan(&r.ID, &createdAt, &r.Provider, &r.Model, &r.Purpose,
			&r.InputTokens, &r.OutputTokens, &r.LatencyMs, &success,
			&r.ErrorMessage, &r.RequestBody, &r.ResponseBody); err != nil {
			return nil, fmt.Errorf("scan LLM request: %w", err)
		}
		r.Success = success != 0
		if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
			r.CreatedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
