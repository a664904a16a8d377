// Package envcfg reads typed configuration values from the environment.
// Every reader takes a default that is returned when the variable is unset
// or cannot be parsed; configuration reads never fail.
package envcfg

import (
	"os"
	"strconv"
	"time"
)

// String returns the value of the environment variable, or def when unset
// or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

// Int parses the environment variable as a base-10 integer.
func Int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

// Bool parses the environment variable with strconv.ParseBool semantics
// (1, t, true, 0, f, false, case-insensitive).
func Bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}

	return b
}

// Float parses the environment variable as a float64.
func Float(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}

	return f
}

// Duration parses the environment variable with time.ParseDuration. Bare
// integers are treated as seconds, so JULES_TIMEOUT=30 and
// JULES_TIMEOUT=30s are equivalent.
func Duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
