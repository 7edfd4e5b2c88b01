package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryDecision classifies an error after a failed attempt.
type retryDecision int

const (
	retryGiveUp retryDecision = iota
	retryBackoff
	retryAfterHint // rate limited with a server-provided wait
)

// retryProvider re-runs Generate on transient failures with exponential
// backoff and jitter.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		decision, hint := r.classify(err, &invalidSeen)
		if decision == retryGiveUp {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt)
		if decision == retryAfterHint {
			wait = hint
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *retryProvider) classify(err error, invalidSeen *bool) (retryDecision, time.Duration) {
	// A dead context fails every further attempt too.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryGiveUp, 0
	}

	// Truncation means MaxTokens is too small; retrying cannot help.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryGiveUp, 0
	}

	// Schema violations get exactly one second chance.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidSeen {
			return retryGiveUp, 0
		}
		*invalidSeen = true
		return retryBackoff, 0
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return retryAfterHint, rl.RetryAfter
	}

	// Rate limits without a hint, unavailable providers and plain
	// network errors all back off normally.
	return retryBackoff, 0
}

func (r *retryProvider) backoff(attempt int) time.Duration {
	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))

	// ±20% jitter keeps concurrent workers from retrying in lockstep.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}
