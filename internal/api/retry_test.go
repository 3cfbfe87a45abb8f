package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func noJitter(p *RetryPolicy) *RetryPolicy {
	p.InitialBackoff = 1 * time.Millisecond
	p.MaxBackoff = 10 * time.Millisecond
	p.JitterFraction = 0.0
	return p
}

func TestIsTransient_NilError(t *testing.T) {
	assert.False(t, isTransient(nil, ReadRetryPolicy()))
}

func TestIsTransient_ServerError(t *testing.T) {
	err := &APIError{Status: 500, Message: "server error"}
	assert.True(t, isTransient(err, ReadRetryPolicy()))
	assert.True(t, isTransient(err, WriteRetryPolicy()))
}

func TestIsTransient_TooManyRequests(t *testing.T) {
	err := &APIError{Status: http.StatusTooManyRequests, Message: "too many"}
	assert.True(t, isTransient(err, ReadRetryPolicy()))
	assert.False(t, isTransient(err, WriteRetryPolicy()))
}

func TestIsTransient_RequestTimeout(t *testing.T) {
	err := &APIError{Status: http.StatusRequestTimeout, Message: "timeout"}
	assert.True(t, isTransient(err, ReadRetryPolicy()))
	assert.False(t, isTransient(err, WriteRetryPolicy()))
}

func TestIsTransient_ClientError(t *testing.T) {
	err := &APIError{Status: 404, Message: "not found"}
	assert.False(t, isTransient(err, ReadRetryPolicy()))
	assert.False(t, isTransient(err, WriteRetryPolicy()))
}

func TestIsTransient_NetworkError(t *testing.T) {
	err := errors.New("connection reset by peer")
	assert.True(t, isTransient(err, ReadRetryPolicy()))
}

func TestIsTransient_ContextCanceled(t *testing.T) {
	assert.False(t, isTransient(context.Canceled, ReadRetryPolicy()))
	assert.False(t, isTransient(context.DeadlineExceeded, ReadRetryPolicy()))
}

func TestBackoff(t *testing.T) {
	p := &RetryPolicy{
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		JitterFraction: 0.0, // no jitter for deterministic test
	}

	assert.Equal(t, 100*time.Millisecond, p.backoff(0))
	assert.Equal(t, 200*time.Millisecond, p.backoff(1))
	assert.Equal(t, 400*time.Millisecond, p.backoff(2))
}

func TestBackoffCapped(t *testing.T) {
	p := &RetryPolicy{
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     5 * time.Second,
		JitterFraction: 0.0,
	}

	assert.Equal(t, 5*time.Second, p.backoff(10))
}

func TestRetrier_ReadRetrySuccess(t *testing.T) {
	r := newRetrier(noJitter(ReadRetryPolicy()), noJitter(WriteRetryPolicy()))

	attempts := 0
	err := r.run(context.Background(), r.read, "GET /steps", func() error {
		attempts++
		if attempts < 3 {
			return &APIError{Status: 500, Message: "fail"}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetrier_ReadExhausted(t *testing.T) {
	r := newRetrier(noJitter(ReadRetryPolicy()), noJitter(WriteRetryPolicy()))

	attempts := 0
	err := r.run(context.Background(), r.read, "GET /steps", func() error {
		attempts++
		return &APIError{Status: 500, Message: "fail"}
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, attempts)
}

func TestRetrier_WriteSingleRetry(t *testing.T) {
	r := newRetrier(noJitter(ReadRetryPolicy()), noJitter(WriteRetryPolicy()))

	attempts := 0
	err := r.run(context.Background(), r.write, "POST /steps", func() error {
		attempts++
		return &APIError{Status: 500, Message: "fail"}
	})

	assert.Error(t, err)
	assert.Equal(t, 2, attempts) // writes get one retry at most
}

func TestRetrier_NoRetryOn4xx(t *testing.T) {
	r := newRetrier(noJitter(ReadRetryPolicy()), noJitter(WriteRetryPolicy()))

	attempts := 0
	err := r.run(context.Background(), r.read, "GET /steps/9", func() error {
		attempts++
		return &APIError{Status: 404, Message: "not found"}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetrier_WriteNoRetryOn429(t *testing.T) {
	r := newRetrier(noJitter(ReadRetryPolicy()), noJitter(WriteRetryPolicy()))

	attempts := 0
	err := r.run(context.Background(), r.write, "POST /steps", func() error {
		attempts++
		return &APIError{Status: http.StatusTooManyRequests, Message: "slow down"}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetrier_ContextCancelDuringBackoff(t *testing.T) {
	read := noJitter(ReadRetryPolicy())
	read.InitialBackoff = 1 * time.Second
	read.MaxBackoff = 1 * time.Second
	r := newRetrier(read, noJitter(WriteRetryPolicy()))

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := r.run(ctx, r.read, "GET /steps", func() error {
		attempts++
		return &APIError{Status: 500, Message: "fail"}
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "retry cancelled")
	assert.Equal(t, 1, attempts)
}

func TestPolicyFor(t *testing.T) {
	r := newRetrier(nil, nil)
	assert.Same(t, r.read, r.policyFor(http.MethodGet))
	assert.Same(t, r.write, r.policyFor(http.MethodPost))
	assert.Same(t, r.write, r.policyFor(http.MethodDelete))
	assert.Same(t, r.write, r.policyFor(http.MethodPut))
	assert.Same(t, r.write, r.policyFor(http.MethodPatch))
}
