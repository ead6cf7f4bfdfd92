package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	EmailJS  EmailJSConfig
	Sessions SessionsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// GeminiConfig holds generative-language API configuration
type GeminiConfig struct {
	APIKey   string        `envconfig:"GEMINI_API_KEY"`
	Endpoint string        `envconfig:"GEMINI_API_URL" default:"https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"`
	Timeout  time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
}

// EmailJSConfig holds transactional-email API configuration
type EmailJSConfig struct {
	ServiceID  string        `envconfig:"EMAILJS_SERVICE_ID"`
	TemplateID string        `envconfig:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string        `envconfig:"EMAILJS_PUBLIC_KEY"`
	Endpoint   string        `envconfig:"EMAILJS_API_URL" default:"https://api.emailjs.com/api/v1.0/email/send"`
	Timeout    time.Duration `envconfig:"EMAILJS_TIMEOUT" default:"30s"`
}

// SessionsConfig holds session key-value store configuration
type SessionsConfig struct {
	// TTL of zero keeps records until the entry is cleared by hand.
	Backend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	TTL     time.Duration `envconfig:"SESSION_TTL" default:"0"`
	Redis   RedisConfig
}

// RedisConfig holds Redis configuration for the redis session backend
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.EmailJS.ServiceID == "" {
		return fmt.Errorf("EMAILJS_SERVICE_ID is required")
	}
	if c.EmailJS.TemplateID == "" {
		return fmt.Errorf("EMAILJS_TEMPLATE_ID is required")
	}
	if c.EmailJS.PublicKey == "" {
		return fmt.Errorf("EMAILJS_PUBLIC_KEY is required")
	}
	switch c.Sessions.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("SESSION_BACKEND must be memory or redis, got %q", c.Sessions.Backend)
	}
	return nil
}

// GetRedisAddr returns the Redis address for the redis session backend
func (c *Config) GetRedisAddr() string {
	return c.Sessions.Redis.Addr
}
