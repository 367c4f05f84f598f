package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OllamaClient переписывает текст через локальный сервер Ollama (/api/chat).
// API не поддерживает параметр n, поэтому варианты собираются последовательными запросами.
type OllamaClient struct {
	http    *http.Client
	baseURL string
	model   string
}

func NewOllamaClient(baseURL string, model string) *OllamaClient {
	return &OllamaClient{
		http:    http.DefaultClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
}

func (c *OllamaClient) Rephrase(ctx context.Context, req Request) (Response, error) {
	n := req.Alternates
	if n < 1 {
		n = 1
	}

	texts := make([]string, 0, n)
	for range n {
		content, err := c.chat(ctx, req)
		if err != nil {
			// Уже собранные варианты не спасают вызов: контракт — либо полный успех, либо ошибка
			return Response{}, err
		}
		if content != "" {
			texts = append(texts, content)
		}
	}
	if len(texts) == 0 {
		return Response{}, ErrEmptyCompletion
	}
	return Response{Texts: texts}, nil
}

func (c *OllamaClient) chat(ctx context.Context, req Request) (string, error) {
	payload := ollamaChatRequest{
		Model: c.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(req.Tone, req.Text)},
		},
		Stream:  false,
		Options: ollamaOptions{Temperature: req.Temperature},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrProvider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(snippet) == 0 {
			snippet = []byte(resp.Status)
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", fmt.Errorf("%w: status=%d, body=%s", ErrAuth, resp.StatusCode, bytes.TrimSpace(snippet))
		case http.StatusTooManyRequests:
			return "", fmt.Errorf("%w: status=%d, body=%s", ErrRateLimited, resp.StatusCode, bytes.TrimSpace(snippet))
		default:
			return "", fmt.Errorf("%w: status=%d, body=%s", ErrProvider, resp.StatusCode, bytes.TrimSpace(snippet))
		}
	}

	var parsed ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrProvider, err)
	}
	return strings.TrimSpace(parsed.Message.Content), nil
}

var _ Client = (*OllamaClient)(nil)
