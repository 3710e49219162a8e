package llm

// DefaultModel is the Gemini model used for batch extraction. Flash is
// sufficient for extraction work and keeps per-search cost low.
const DefaultModel = "gemini-2.5-flash"

// Config holds LLM provider configuration.
type Config struct {
	Model string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{Model: DefaultModel}
}
