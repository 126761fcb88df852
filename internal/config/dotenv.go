package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads the optional env files the server consults before
// Load resolves its settings. .env.local is applied first so a developer
// override beats the checked-in .env; variables already present in the
// process environment are never overwritten, so deployment config always
// wins over both files. Returns the files that were actually applied.
func LoadDotEnv() []string {
	var loaded []string
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			loaded = append(loaded, name)
		}
	}
	return loaded
}
