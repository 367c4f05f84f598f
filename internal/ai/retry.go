package ai

import (
	"context"
	"errors"
	"time"
)

// RetryConfig управляет повторами обёрнутых вызовов Rephrase.
type RetryConfig struct {
	MaxAttempts int                  // Всего попыток, включая первую; меньше 1 трактуется как 1
	Delay       time.Duration        // Фиксированная пауза между попытками
	ShouldRetry func(err error) bool // nil — дефолтная политика
}

// WithRetry оборачивает клиента детерминированными повторами по ошибке.
func WithRetry(next Client, cfg RetryConfig) Client {
	if next == nil {
		return nil
	}
	return &retryClient{next: next, cfg: cfg}
}

type retryClient struct {
	next Client
	cfg  RetryConfig
}

func (c *retryClient) Rephrase(ctx context.Context, req Request) (Response, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Response{}, ctxErr
	}

	attempts := c.cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := c.next.Rephrase(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if attempt == attempts || !c.shouldRetry(ctx, err) {
			break
		}
		if c.cfg.Delay > 0 {
			t := time.NewTimer(c.cfg.Delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return Response{}, context.Cause(ctx)
			case <-t.C:
			}
		}
	}
	return Response{}, lastErr
}

func (c *retryClient) shouldRetry(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if c.cfg.ShouldRetry != nil {
		return c.cfg.ShouldRetry(err)
	}
	return defaultShouldRetry(err)
}

// defaultShouldRetry: повторяем сетевые сбои и троттлинг; ошибки авторизации,
// таймауты и отмену контекста — никогда.
func defaultShouldRetry(err error) bool {
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrTimeout) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
