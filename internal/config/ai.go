package config

import "os"

// GroqConfig holds all chat-provider configuration
type GroqConfig struct {
	APIKey  string `json:"-"` // Never serialize
	BaseURL string `json:"baseUrl"`

	// Model is the completion model used for companion replies
	Model string `json:"model"`

	// Temperature is fixed per deployment; the persona depends on it
	Temperature float64 `json:"temperature"`

	TimeoutMS int `json:"timeoutMs"`
}

// DefaultGroqConfig returns the default chat-provider configuration
func DefaultGroqConfig() *GroqConfig {
	return &GroqConfig{
		APIKey:      os.Getenv("GROQ_API_KEY"),
		BaseURL:     "https://api.groq.com/openai/v1",
		Model:       getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		Temperature: 0.6,
		TimeoutMS:   10000, // 10 second default timeout
	}
}

// IsEnabled returns true if the chat provider is configured
func (c *GroqConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatEndpoint returns the full chat completions endpoint
func (c *GroqConfig) ChatEndpoint() string {
	return c.BaseURL + "/chat/completions"
}
