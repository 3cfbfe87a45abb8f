package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// RetryPolicy configures retry behavior for one class of requests.
type RetryPolicy struct {
	MaxAttempts    int // total attempts including the first
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	JitterFraction float64 // 0.0 to 1.0
	RetryOn4xx     bool    // allow retrying 408/429; writes never retry any 4xx
}

// ReadRetryPolicy returns the default policy for reads: transient errors
// retry up to 3 attempts total, backoff capped at 30 seconds.
func ReadRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		JitterFraction: 0.25,
		RetryOn4xx:     true,
	}
}

// WriteRetryPolicy returns the default policy for writes: one retry at
// most, and any 4xx surfaces immediately. Re-running a write against a
// partially-applied state is riskier than re-running an idempotent read.
func WriteRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts:    2,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		JitterFraction: 0.25,
	}
}

type retrier struct {
	read  *RetryPolicy
	write *RetryPolicy
}

func newRetrier(read, write *RetryPolicy) *retrier {
	if read == nil {
		read = ReadRetryPolicy()
	}
	if write == nil {
		write = WriteRetryPolicy()
	}
	return &retrier{read: read, write: write}
}

func (r *retrier) policyFor(method string) *RetryPolicy {
	if method == http.MethodGet {
		return r.read
	}
	return r.write
}

// isTransient returns true for errors worth retrying under the policy.
func isTransient(err error, policy *RetryPolicy) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 500 {
			return true
		}
		if policy.RetryOn4xx {
			return apiErr.Status == http.StatusRequestTimeout || apiErr.Status == http.StatusTooManyRequests
		}
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true // network errors are transient
}

// backoff computes the delay for the given attempt with jitter.
func (p *RetryPolicy) backoff(attempt int) time.Duration {
	base := float64(p.InitialBackoff) * math.Pow(2, float64(attempt))
	if base > float64(p.MaxBackoff) {
		base = float64(p.MaxBackoff)
	}
	jitter := base * p.JitterFraction * (rand.Float64()*2 - 1) // +/- jitter
	d := time.Duration(base + jitter)
	if d < 0 {
		d = 0
	}
	return d
}

// sleep waits for the given duration or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run executes fn under the given policy. Only transient errors retry.
func (r *retrier) run(ctx context.Context, policy *RetryPolicy, operation string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr, policy) {
			return lastErr
		}
		if attempt < policy.MaxAttempts-1 {
			if err := sleep(ctx, policy.backoff(attempt)); err != nil {
				return fmt.Errorf("%s: %w (retry cancelled)", operation, lastErr)
			}
		}
	}
	return fmt.Errorf("%s: %w (after %d attempts)", operation, lastErr, policy.MaxAttempts)
}
