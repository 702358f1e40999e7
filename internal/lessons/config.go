package lessons

// OptionsPerQuestion is the fixed number of choices in every quiz item.
const OptionsPerQuestion = 4

// Config holds lecture generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for lecture generation. Lectures
// run 800-1200 words plus a quiz, hence the large token budget.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   6000,
		Temperature: 0.6,
	}
}
