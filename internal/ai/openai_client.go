package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
)

// OpenAIClient переписывает текст через Chat Completions с параметром n для вариантов.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(client *openai.Client, model string) *OpenAIClient {
	return &OpenAIClient{client: client, model: model}
}

func (c *OpenAIClient) Rephrase(ctx context.Context, req Request) (Response, error) {
	if c.client == nil {
		return Response{}, errors.New("nil openai client")
	}
	n := req.Alternates
	if n < 1 {
		n = 1
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(req.Tone, req.Text)),
		},
		N:           openai.Int(int64(n)),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return Response{}, classifyOpenAIError(err)
	}

	texts := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		content := strings.TrimSpace(choice.Message.Content)
		if content != "" {
			texts = append(texts, content)
		}
	}
	if len(texts) == 0 {
		return Response{}, ErrEmptyCompletion
	}
	return Response{Texts: texts}, nil
}

// classifyOpenAIError сводит ошибки SDK к таксономии пакета.
func classifyOpenAIError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrProvider, err)
}

var _ Client = (*OpenAIClient)(nil)
