package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultPexelsBaseURL = "https://api.pexels.com/v1"

// PexelsConfig configures the Pexels search client.
type PexelsConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// PexelsClient implements Searcher against the Pexels photo search API.
type PexelsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPexelsClient creates a Pexels client. An empty key is allowed; every
// search then fails, which the slide pipeline treats as "no images".
func NewPexelsClient(cfg PexelsConfig) *PexelsClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultPexelsBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &PexelsClient{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type pexelsSearchResponse struct {
	Photos []struct {
		Src struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// Search returns up to perPage photos for query, using the "large" rendition.
func (c *PexelsClient) Search(ctx context.Context, query string, perPage int, orientation string) ([]Image, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("pexels: API key not configured")
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(perPage))
	if orientation != "" {
		q.Set("orientation", orientation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pexels: build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels: search %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pexels: search %q: status %d: %s", query, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed pexelsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("pexels: decode response: %w", err)
	}

	out := make([]Image, 0, len(parsed.Photos))
	for _, p := range parsed.Photos {
		if p.Src.Large == "" {
			continue
		}
		out = append(out, Image{URL: p.Src.Large})
	}
	return out, nil
}
