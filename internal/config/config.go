package config

import (
	"fmt"
	"log"
	"os"

	"github.com/alkime/gradients/pkg/gradient"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env       string `envconfig:"ENV" default:"development"`
	Port      string `envconfig:"PORT" default:"8080"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./public"`

	// Security settings
	HSTSMaxAge int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode    string `envconfig:"CSP_MODE" default:"relaxed"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Editor settings
	DeferSort     bool `envconfig:"GRADIENT_DEFER_SORT" default:"false"`
	ClampOpacity  bool `envconfig:"GRADIENT_CLAMP_OPACITY" default:"false"`
	PreviewWidth  int  `envconfig:"PREVIEW_WIDTH" default:"48"`
	PreviewHeight int  `envconfig:"PREVIEW_HEIGHT" default:"3"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	// Parse environment variables into config struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if config.PreviewWidth < 1 || config.PreviewHeight < 1 {
		return nil, fmt.Errorf("invalid preview size %dx%d", config.PreviewWidth, config.PreviewHeight)
	}

	return &config, nil
}

// StoreOptions maps the editor settings onto the stop store.
func (c *Config) StoreOptions() gradient.StoreOptions {
	return gradient.StoreOptions{
		DeferSort:    c.DeferSort,
		ClampOpacity: c.ClampOpacity,
	}
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		// Production CSP
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'; " +
			"img-src 'self' data: blob:; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data: blob:"
}
