// Package speech turns lecture text into narrated audio through a hosted
// text-to-speech service. Output bytes are relayed untouched.
package speech

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no API key is set for the TTS backend.
var ErrNotConfigured = errors.New("speech: API key not configured")

// Synthesizer renders text to audio. It returns the audio bytes and their
// content type.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, string, error)
}
