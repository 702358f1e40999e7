package speech

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFishClient_Synthesize(t *testing.T) {
	var got fishTTSRequest
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3\x03fake-mp3"))
	}))
	defer server.Close()

	c := NewFishClient(FishConfig{APIKey: "fish-test", BaseURL: server.URL + "/v1"})
	audio, ct, err := c.Synthesize(context.Background(), "Welcome to module one.")
	require.NoError(t, err)

	assert.Equal(t, []byte("ID3\x03fake-mp3"), audio)
	assert.Equal(t, "audio/mpeg", ct)
	assert.Equal(t, "Bearer fish-test", gotAuth)
	assert.Equal(t, "/v1/tts", gotPath)
	assert.Equal(t, fishTTSRequest{
		Text:        "Welcome to module one.",
		ReferenceID: DefaultFishVoice,
		Format:      "mp3",
		MP3Bitrate:  128,
	}, got)
}

func TestFishClient_UpstreamError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer server.Close()

	c := NewFishClient(FishConfig{APIKey: "fish-test", BaseURL: server.URL})
	_, _, err := c.Synthesize(context.Background(), "hello")

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusPaymentRequired, upErr.StatusCode)
	assert.Equal(t, 1, calls, "tts must not retry")
}

func TestFishClient_NotConfigured(t *testing.T) {
	c := NewFishClient(FishConfig{})
	assert.False(t, c.Configured())

	_, _, err := c.Synthesize(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
