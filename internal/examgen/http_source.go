package examgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sauravjha/bcabuddy/internal/exam"
)

// HTTPSource implements Source against a backend question service. It
// prefers the mixed-exam endpoint and falls back to the older MCQ-only
// endpoint when the backend predates it.
type HTTPSource struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource for the given API base URL. The
// token is sent as a bearer credential on every request.
func NewHTTPSource(baseURL, token string) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Fetch requests a question set from the backend. A payload the parser
// cannot recognize yields an empty set, which the session treats as a
// recoverable load error.
func (s *HTTPSource) Fetch(ctx context.Context, req Request) ([]exam.Question, error) {
	body, status, err := s.post(ctx, "/generate-exam", map[string]any{
		"semester":         req.Semester,
		"subject":          req.Subject,
		"mcq_count":        req.MCQCount,
		"subjective_count": req.SubjectiveCount,
	})
	if err == nil && status >= 300 {
		// Older backends only know the MCQ-only endpoint.
		body, status, err = s.post(ctx, "/generate-quiz", map[string]any{
			"semester": req.Semester,
			"subject":  req.Subject,
			"count":    req.Total(),
		})
	}
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		msg := string(body)
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", status)
		}
		return nil, fmt.Errorf("failed to load questions: %s", msg)
	}

	return ParsePayload(body), nil
}

func (s *HTTPSource) post(ctx context.Context, path string, payload map[string]any) ([]byte, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%s: read response: %w", path, err)
	}
	return body, resp.StatusCode, nil
}
