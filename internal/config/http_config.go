package config

import (
	"time"
)

type HTTP struct{}

var _ HTTPConfig = HTTP{}

// GetHTTPTimeout bounds every backend request end to end. The session
// subsystem imposes no timeouts of its own; it relies on this
// transport-level default.
func (HTTP) GetHTTPTimeout() time.Duration {
	raw := GetEnv("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 30 * time.Second
	}
	return timeout
}
