package ai

import (
	"context"
	"strings"
)

// StubClient заглушка, которая не делает реальных запросов: возвращает исходный текст как есть.
type StubClient struct{}

func NewStubClient() *StubClient { return &StubClient{} }

func (c *StubClient) Rephrase(_ context.Context, req Request) (Response, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Response{}, ErrEmptyCompletion
	}
	return Response{Texts: []string{text}}, nil
}

var _ Client = (*StubClient)(nil)
