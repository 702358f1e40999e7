package grading

// Config holds grading settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.5,
	}
}
