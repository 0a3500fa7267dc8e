package proxy

import "os"

// Config holds proxy server settings, read from the environment.
type Config struct {
	Port        string
	UpstreamURL string
	APIKey      string
	Model       string
}

// LoadConfig reads proxy configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := Config{
		Port:        "8787",
		UpstreamURL: "https://api.cohere.ai/v1/chat",
		APIKey:      os.Getenv("COHERE_API_KEY"),
		Model:       "command-r-plus",
	}
	if v := os.Getenv("SOLACE_PROXY_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("SOLACE_PROXY_UPSTREAM"); v != "" {
		cfg.UpstreamURL = v
	}
	if v := os.Getenv("SOLACE_PROXY_MODEL"); v != "" {
		cfg.Model = v
	}
	return cfg
}
