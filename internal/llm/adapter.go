package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Helpers shared by the SDK-backed providers. Each provider only knows how
// to build its vendor request and where the vendor keeps text, token counts,
// the finish flag and the HTTP status; everything else is decided here.

// reply is the vendor-neutral view of one completion.
type reply struct {
	text      string
	model     string
	input     int64
	output    int64
	total     int64 // 0 means input+output
	truncated bool
}

func (r reply) response() *Response {
	total := r.total
	if total == 0 {
		total = r.input + r.output
	}
	stop := "end"
	if r.truncated {
		stop = "max_tokens"
	}
	return &Response{
		Content:    json.RawMessage(r.text),
		Model:      r.model,
		StopReason: stop,
		Usage: Usage{
			InputTokens:  int(r.input),
			OutputTokens: int(r.output),
			TotalTokens:  int(total),
		},
	}
}

// classifyStatus turns an SDK failure into one of the attempt errors. A
// status of 0 means the request never got an HTTP answer.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

func requireKey(vendor, key string) error {
	if key == "" {
		return fmt.Errorf("%s API key is required", vendor)
	}
	return nil
}

// turnRole picks the vendor's role value for a message.
func turnRole[R any](m Message, user, assistant R) R {
	if m.Role == RoleAssistant {
		return assistant
	}
	return user
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so direct model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
