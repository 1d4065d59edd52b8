package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider wraps a Provider and re-issues requests that failed with
// transient errors, backing off exponentially between attempts.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry adds retry-with-backoff behavior to a provider.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidSeen) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable classifies an error. An ErrInvalidResponse earns exactly one
// retry per call: a second malformed payload means the model is not going
// to produce valid output for this request.
func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		// A token-limit overrun repeats identically on retry.
		return false
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}

	// Rate limits, 5xx, and transport errors are all transient.
	return true
}

// wait computes the pause before the next attempt. Rate-limit errors that
// carry a RetryAfter hint use it directly.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if d > float64(r.cfg.MaxWait) {
		d = float64(r.cfg.MaxWait)
	}

	// ±20% jitter keeps concurrent clients from retrying in lockstep.
	d += d * 0.2 * (2*rand.Float64() - 1)
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}
