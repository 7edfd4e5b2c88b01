package llm

import (
	"context"
	"errors"
	"fmt"
)

// FailoverProvider tries a fixed order of providers and serves the first
// successful response. The generation pipeline treats it as a single
// opaque provider: only when every backend fails does the caller see an
// error.
type FailoverProvider struct {
	providers []Provider
}

// NewFailover creates a FailoverProvider. At least one provider is
// required; the first is the primary.
func NewFailover(providers ...Provider) (*FailoverProvider, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("failover requires at least one provider")
	}
	return &FailoverProvider{providers: providers}, nil
}

func (f *FailoverProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var errs []error
	for _, p := range f.providers {
		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		// A cancelled context fails every remaining backend too.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		errs = append(errs, fmt.Errorf("%s: %w", p.ModelID(), err))
	}
	return nil, fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}

// ModelID returns the primary provider's model id.
func (f *FailoverProvider) ModelID() string {
	return f.providers[0].ModelID()
}
