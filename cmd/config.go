package cmd

import "os"

type Config struct {
	HTTPHost       string
	HTTPPort       string
	OpenAPISpec    string
	ReloadDirs     []string
	ReloadPatterns []string
}

// EnvOrDefault returns the value of the environment variable key, or fallback
// when it is unset or empty.
func EnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
