// internal/config/config.go
package config

import "os"

// Config is resolved once at startup. AI provider clients, Redis and AMQP are
// optional capabilities: an empty value means the capability is absent.
type Config struct {
	Port string

	OpenAIKey      string
	OpenAIModel    string
	AnthropicKey   string
	AnthropicModel string

	RedisAddr string
	AMQPURL   string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel: getEnv("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		AMQPURL:        os.Getenv("AMQP_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
