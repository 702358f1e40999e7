package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash-lite", "gemini-2.5-flash-lite"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema_ModuleList(t *testing.T) {
	def := map[string]any{
		"type":     "array",
		"minItems": 5,
		"maxItems": 10,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"module_number": map[string]any{"type": "integer"},
				"module_title":  map[string]any{"type": "string"},
				"description":   map[string]any{"type": "string"},
			},
			"required": []any{"module_number", "module_title", "description"},
		},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "ARRAY" {
		t.Fatalf("expected ARRAY type, got %s", schema.Type)
	}
	if schema.MinItems == nil || *schema.MinItems != 5 {
		t.Fatalf("expected minItems 5, got %v", schema.MinItems)
	}
	if schema.MaxItems == nil || *schema.MaxItems != 10 {
		t.Fatalf("expected maxItems 10, got %v", schema.MaxItems)
	}
	if schema.Items == nil || schema.Items.Type != "OBJECT" {
		t.Fatalf("expected OBJECT items, got %+v", schema.Items)
	}
	if schema.Items.Properties["module_number"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER module_number, got %s", schema.Items.Properties["module_number"].Type)
	}
	if len(schema.Items.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Items.Required))
	}
}

func TestBuildGeminiSchema_AnswerEnum(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type": "string",
		"enum": []any{"A", "B", "C", "D"},
	})
	if schema.Type != "STRING" || len(schema.Enum) != 4 {
		t.Fatalf("unexpected schema: type=%s enum=%v", schema.Type, schema.Enum)
	}
}

func newTestGeminiProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-flash",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func geminiBody(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{
			"promptTokenCount":     12,
			"candidatesTokenCount": 8,
			"totalTokenCount":      20,
		},
	}
}

func TestGeminiProvider_HappyPath(t *testing.T) {
	var path string
	var got map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiBody(`[{"module_number":1}]`, "STOP"))
	}

	p := newTestGeminiProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		Messages:  UserPrompt("Break down photosynthesis."),
		Schema:    testSchema(),
		MaxTokens: 2000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, "models/gemini-2.5-flash:generateContent") {
		t.Fatalf("unexpected path %q", path)
	}
	if string(resp.Content) != `[{"module_number":1}]` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
	if resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 8 || resp.Usage.TotalTokens != 20 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	gen, _ := got["generationConfig"].(map[string]any)
	if gen["responseMimeType"] != "application/json" || gen["responseSchema"] == nil {
		t.Fatalf("expected JSON response schema in generation config, got %v", gen)
	}
}

func TestGeminiProvider_MaxTokensStop(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiBody(`{"lecture_title":"Ce`, "MAX_TOKENS"))
	}

	p := newTestGeminiProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{Messages: UserPrompt("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Fatalf("expected max_tokens, got %q", resp.StopReason)
	}
}

func TestGeminiProvider_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		handler := func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": tt.status, "message": "nope", "status": "ERR"},
			})
		}

		p := newTestGeminiProvider(t, handler)
		_, err := p.Generate(context.Background(), Request{Messages: UserPrompt("x")})
		if !tt.check(err) {
			t.Fatalf("status %d: unexpected error type %T (%v)", tt.status, err, err)
		}
	}
}
