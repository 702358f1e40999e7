package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIProvider{
		client: client,
		model:  DefaultGroqModel,
	}
}

func completionBody(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   DefaultGroqModel,
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": finish,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var got openai.ChatCompletionRequest
	handler := func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(`[{"module_number":1}]`, "stop"))
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		Messages:    UserPrompt("Break down photosynthesis."),
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `[{"module_number":1}]` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
	if got.Model != DefaultGroqModel || got.MaxTokens != 2000 {
		t.Fatalf("unexpected request: model=%q max_tokens=%d", got.Model, got.MaxTokens)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != openai.ChatMessageRoleUser {
		t.Fatalf("expected a single user message, got %+v", got.Messages)
	}
	if got.ResponseFormat != nil {
		t.Fatal("response format should be unset when structured output is off")
	}
}

func TestOpenAIProvider_NoChoicesIsEmptyCompletion(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body := completionBody("", "stop")
		body["choices"] = []map[string]any{}
		json.NewEncoder(w).Encode(body)
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{Messages: UserPrompt("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Content) != 0 {
		t.Fatalf("expected empty content, got %q", resp.Content)
	}
}

func TestOpenAIProvider_LengthStop(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(`{"lecture_title":"Cells","lec`, "length"))
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{Messages: UserPrompt("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Fatalf("expected max_tokens, got %q", resp.StopReason)
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{Messages: UserPrompt("test"), MaxTokens: 100})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "Internal server error",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{Messages: UserPrompt("test"), MaxTokens: 100})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_StructuredOutput(t *testing.T) {
	var got openai.ChatCompletionRequest
	handler := func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(`{"title":"x","number":1}`, "stop"))
	}

	p := newTestOpenAIProvider(t, handler)
	p.structured = true
	if _, err := p.Generate(context.Background(), Request{Messages: UserPrompt("x"), Schema: testSchema()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.JSONSchema == nil {
		t.Fatal("expected json_schema response format")
	}
	if got.ResponseFormat.JSONSchema.Name != "test-slide" {
		t.Fatalf("unexpected schema name %q", got.ResponseFormat.JSONSchema.Name)
	}
}

func TestGroqProviderDefaults(t *testing.T) {
	p, err := NewGroqProvider(OpenAIConfig{APIKey: "gsk_test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != DefaultGroqModel {
		t.Fatalf("expected %q, got %q", DefaultGroqModel, p.ModelID())
	}

	if _, err := NewGroqProvider(OpenAIConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("llama-70b", openaiModels); got != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected friendly-name resolution: %q", got)
	}
	if got := resolveModel("custom/model", openaiModels); got != "custom/model" {
		t.Fatalf("unknown names should pass through, got %q", got)
	}
}
