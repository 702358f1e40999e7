package llm

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// AnthropicProvider talks to the Anthropic Messages API.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicProvider(cfg AnthropicConfig) (*AnthropicProvider, error) {
	if err := requireKey("anthropic", cfg.APIKey); err != nil {
		return nil, err
	}

	// The attempt loop owns retries; the SDK must not add hidden ones.
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: resolveModel(cfg.Model, anthropicModels)}, nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	msg, err := p.client.Messages.New(ctx, p.params(req))
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(apiErr.StatusCode, err)
		}
		return nil, classifyStatus(0, err)
	}

	r := reply{
		model:     string(msg.Model),
		input:     msg.Usage.InputTokens,
		output:    msg.Usage.OutputTokens,
		truncated: msg.StopReason == anthropic.StopReasonMaxTokens,
	}
	// First text block only; a reply without one is an empty completion.
	for _, block := range msg.Content {
		if block.Type == "text" {
			r.text = block.Text
			break
		}
	}
	return r.response(), nil
}

func (p *AnthropicProvider) ModelID() string { return p.model }

func (p *AnthropicProvider) params(req Request) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
	}
	for _, m := range req.Messages {
		params.Messages = append(params.Messages, anthropic.MessageParam{
			Role:    turnRole(m, anthropic.MessageParamRoleUser, anthropic.MessageParamRoleAssistant),
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(m.Content)},
		})
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	// Structured output only accepts an object at the root, so the module
	// list (a bare array) relies on the prompt and local validation.
	if req.Schema != nil && req.Schema.Definition["type"] == "object" {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: req.Schema.Definition},
		}
	}
	return params
}
