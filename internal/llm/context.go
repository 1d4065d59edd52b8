package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose labels the context with what the request is for
// ("examgen", "grading"). The label ends up in the request log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the purpose label, or "unknown" when unlabeled.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok {
		return p
	}
	return "unknown"
}
