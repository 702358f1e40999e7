package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidatingProvider is the parse step of an attempt: it treats the
// completion as untrusted text and only lets checked JSON through.
type ValidatingProvider struct {
	inner Provider
}

// WithValidation wraps a Provider so that every response is parsed and
// validated before it is returned.
func WithValidation(p Provider) Provider {
	return &ValidatingProvider{inner: p}
}

func (v *ValidatingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := v.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	content := bytes.TrimSpace(resp.Content)
	if req.StripCodeFence {
		content = stripCodeFence(content)
	}

	if err := validateResponse(req.Schema, content); err != nil {
		if resp.StopReason == "max_tokens" {
			return nil, &ErrInvalidResponse{
				Content: content,
				Err:     errors.Join(err, &ErrMaxTokensExceeded{Content: content}),
			}
		}
		return nil, err
	}

	if req.Check != nil {
		if err := req.Check(content); err != nil {
			return nil, &ErrInvalidResponse{
				Content: content,
				Err:     fmt.Errorf("shape check failed: %w", err),
			}
		}
	}

	out := *resp
	out.Content = content
	return &out, nil
}

func (v *ValidatingProvider) ModelID() string {
	return v.inner.ModelID()
}

var (
	fenceOpen  = regexp.MustCompile("^```(?:json)?\\s*\\n?")
	fenceClose = regexp.MustCompile("\\n?```\\s*$")
)

// stripCodeFence removes a leading ``` or ```json marker and a trailing ```
// marker. Text that does not start with a fence is returned unchanged.
func stripCodeFence(raw []byte) []byte {
	if !bytes.HasPrefix(raw, []byte("```")) {
		return raw
	}
	out := fenceOpen.ReplaceAll(raw, nil)
	out = fenceClose.ReplaceAll(out, nil)
	return bytes.TrimSpace(out)
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateResponse checks that raw is syntactically valid JSON and, when a
// schema is given, that it conforms to it.
// Returns *ErrInvalidResponse on failure.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if len(raw) == 0 {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     errors.New("empty completion"),
		}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	if schema == nil {
		return nil
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not a Go map with typed slices.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
