// Package config loads the YAML configuration for the game host: screen
// size, frame rate, RNG seed and logging.
package config

import "os"

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "PLANETDEFENSE_CONFIG"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
