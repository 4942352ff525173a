package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"portfolio-admin/internal/application/service"
	"portfolio-admin/internal/config"
	"portfolio-admin/pkg/logger"
)

type openAILLMAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

func NewOpenAILLMAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.LLM.BaseURL == "" {
		return nil, fmt.Errorf("llm base URL is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.LLM.ApiKey)
	clientConfig.BaseURL = cfg.LLM.BaseURL

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("LLM Adapter initialized")
	return &openAILLMAdapter{client: client, model: cfg.LLM.Model, log: log}, nil
}

func (a *openAILLMAdapter) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.HTTPStatusCode == http.StatusTooManyRequests ||
				apiErr.HTTPStatusCode == http.StatusServiceUnavailable) {
			return "", service.ErrServiceOverloaded
		}
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}
