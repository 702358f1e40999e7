package llm

import (
	"context"
	"time"

	"github.com/abhisek/lecturely/internal/logger"
)

// LoggingProvider is a decorator that records every LLM attempt as a
// structured log line.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps a Provider with attempt logging. A nil logger discards.
func WithLogging(p Provider, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []any{
		"purpose", PurposeFrom(ctx),
		"model_id", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
		"success", err == nil,
	}
	if resp != nil {
		fields = append(fields,
			"model", resp.Model,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"stop_reason", resp.StopReason,
		)
		if cost := LookupCost(resp.Model); cost != nil {
			fields = append(fields, "cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}

	if err != nil {
		l.log.Warn("LLM attempt failed", append(fields, "error", err.Error())...)
		return nil, err
	}
	l.log.Debug("LLM attempt", fields...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
