package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to model IDs on OpenAI-compatible hosts.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
	"llama-70b":   "llama-3.3-70b-versatile",
	"llama-8b":    "llama-3.1-8b-instant",
}

// OpenAIProvider implements Provider using the OpenAI SDK.
// It also serves Groq, OpenRouter and other OpenAI-compatible APIs via
// BaseURL.
type OpenAIProvider struct {
	client     *openai.Client
	model      string
	structured bool
}

// NewOpenAIProvider creates a new OpenAI-compatible provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if err := requireKey("OpenAI-compatible", cfg.APIKey); err != nil {
		return nil, err
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client:     openai.NewClientWithConfig(config),
		model:      resolveModel(cfg.Model, openaiModels),
		structured: cfg.StructuredOutput,
	}, nil
}

// NewGroqProvider creates a provider targeting Groq's OpenAI-compatible API.
func NewGroqProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGroqBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGroqModel
	}
	return NewOpenAIProvider(cfg)
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenRouterBaseURL
	}
	return NewOpenAIProvider(cfg)
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    buildOpenAIMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}

	if p.structured && req.Schema != nil {
		schemaBytes, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema: %w", err)
		}

		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	r := reply{
		model:  resp.Model,
		input:  int64(resp.Usage.PromptTokens),
		output: int64(resp.Usage.CompletionTokens),
		total:  int64(resp.Usage.TotalTokens),
	}
	// A reply without choices degrades to an empty completion, which the
	// validation layer rejects like any other unparseable text.
	if len(resp.Choices) > 0 {
		r.text = resp.Choices[0].Message.Content
		r.truncated = resp.Choices[0].FinishReason == openai.FinishReasonLength
	}
	return r.response(), nil
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func buildOpenAIMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turnRole(m, openai.ChatMessageRoleUser, openai.ChatMessageRoleAssistant),
			Content: m.Content,
		})
	}
	return messages
}

// mapOpenAIError reads the status from whichever error type the SDK used.
func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return classifyStatus(reqErr.HTTPStatusCode, err)
	}
	return classifyStatus(0, err)
}
