// ABOUTME: Test helpers for config tests
// ABOUTME: Provides utilities for environment variable management

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withCleanEnv clears the environment, points ENV_FILE at a path that does
// not exist, sets the extra vars, and returns a cleanup function that
// restores the original env. Use with t.Cleanup().
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    t.Cleanup(withCleanEnv(t, map[string]string{
//	        "RATE_LIMIT_ADVICE": "20",
//	    }))
//	}
func withCleanEnv(t *testing.T, extra map[string]string) func() {
	t.Helper()

	// Save entire environment
	originalEnv := os.Environ()

	// Clear environment for clean slate
	os.Clearenv()

	// Keep a stray .env in the working directory out of the tests
	os.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	// Set extra values
	for key, value := range extra {
		os.Setenv(key, value)
	}

	// Return cleanup function that restores original environment
	return func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i := 0; i < len(env); i++ {
				if env[i] == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}
}
