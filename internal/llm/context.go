package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose labels the context with what the request is for, e.g.
// "template-gen". The logging middleware stores the label with each
// request event so usage can be broken down per purpose.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, "unknown" when none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
