package curriculum

const (
	// MinModules and MaxModules bound the outline length the model is asked for.
	MinModules = 5
	MaxModules = 10
)

// Config holds module-list generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation settings for course outlines.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.7,
	}
}
