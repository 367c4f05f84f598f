package ai

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient отдаёт заранее заданные ошибки, затем успех.
type scriptedClient struct {
	calls atomic.Int64
	errs  []error
	resp  Response
}

func (c *scriptedClient) Rephrase(_ context.Context, _ Request) (Response, error) {
	n := int(c.calls.Add(1))
	if n <= len(c.errs) {
		return Response{}, c.errs[n-1]
	}
	return c.resp, nil
}

func TestRetrySucceedsAfterProviderError(t *testing.T) {
	next := &scriptedClient{
		errs: []error{ErrProvider},
		resp: Response{Texts: []string{"ok"}},
	}
	client := WithRetry(next, RetryConfig{MaxAttempts: 2, Delay: time.Millisecond})

	resp, err := client.Rephrase(context.Background(), Request{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Primary())
	assert.EqualValues(t, 2, next.calls.Load())
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	next := &scriptedClient{errs: []error{ErrProvider, ErrProvider, ErrProvider}}
	client := WithRetry(next, RetryConfig{MaxAttempts: 2, Delay: time.Millisecond})

	_, err := client.Rephrase(context.Background(), Request{Text: "hi"})
	require.ErrorIs(t, err, ErrProvider)
	assert.EqualValues(t, 2, next.calls.Load())
}

func TestRetryDoesNotRetryAuthError(t *testing.T) {
	next := &scriptedClient{errs: []error{ErrAuth, ErrAuth}}
	client := WithRetry(next, RetryConfig{MaxAttempts: 3, Delay: time.Millisecond})

	_, err := client.Rephrase(context.Background(), Request{Text: "hi"})
	require.ErrorIs(t, err, ErrAuth)
	assert.EqualValues(t, 1, next.calls.Load())
}

func TestRetryDoesNotRetryTimeout(t *testing.T) {
	next := &scriptedClient{errs: []error{ErrTimeout, ErrTimeout}}
	client := WithRetry(next, RetryConfig{MaxAttempts: 3, Delay: time.Millisecond})

	_, err := client.Rephrase(context.Background(), Request{Text: "hi"})
	require.ErrorIs(t, err, ErrTimeout)
	assert.EqualValues(t, 1, next.calls.Load())
}

func TestRetryRetriesRateLimit(t *testing.T) {
	next := &scriptedClient{
		errs: []error{ErrRateLimited},
		resp: Response{Texts: []string{"ok"}},
	}
	client := WithRetry(next, RetryConfig{MaxAttempts: 2, Delay: time.Millisecond})

	resp, err := client.Rephrase(context.Background(), Request{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Primary())
	assert.EqualValues(t, 2, next.calls.Load())
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	next := &scriptedClient{errs: []error{ErrProvider, ErrProvider}}
	client := WithRetry(next, RetryConfig{MaxAttempts: 3, Delay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := client.Rephrase(ctx, Request{Text: "hi"})
	require.Error(t, err)
	// Отмена должна прервать паузу между попытками, а не ждать минуту
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRetryNoCallsOnAlreadyCancelledContext(t *testing.T) {
	next := &scriptedClient{resp: Response{Texts: []string{"ok"}}}
	client := WithRetry(next, RetryConfig{MaxAttempts: 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Rephrase(ctx, Request{Text: "hi"})
	require.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 0, next.calls.Load())
}
