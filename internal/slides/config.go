package slides

import "github.com/abhisek/lecturely/internal/images"

// Config holds slide generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// ExcerptChars caps how much of the lecture is embedded in the prompt.
	ExcerptChars int

	// ImagesPerQuery is the page size asked of the photo search; only the
	// first hit is kept.
	ImagesPerQuery int
	Orientation    string
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:      2000,
		Temperature:    0.5,
		ExcerptChars:   2000,
		ImagesPerQuery: 2,
		Orientation:    images.Landscape,
	}
}
