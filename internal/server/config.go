package server

import (
	"os"
	"strings"
)

// Config holds the HTTP service settings.
type Config struct {
	// Port the service listens on.
	Port string

	// AllowedOrigins for CORS. The quiz frontend is a browser app, so
	// the service must answer preflight requests.
	AllowedOrigins []string
}

// DefaultConfig returns the standard server configuration.
func DefaultConfig() Config {
	return Config{
		Port:           "8080",
		AllowedOrigins: []string{"*"},
	}
}

// ConfigFromEnv reads PORT and DUWEN_ALLOWED_ORIGINS over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}
	if origins := os.Getenv("DUWEN_ALLOWED_ORIGINS"); origins != "" {
		var out []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
		if len(out) > 0 {
			cfg.AllowedOrigins = out
		}
	}

	return cfg
}
