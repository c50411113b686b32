package config

import (
	"time"
)

// ConnectRetryConfig holds the backoff used while waiting for the database at startup.
type ConnectRetryConfig struct {
	// InitialInterval is the delay before the second attempt
	InitialInterval time.Duration
	// MaxInterval caps the delay between attempts
	MaxInterval time.Duration
	// MaxElapsedTime bounds the whole connect loop
	MaxElapsedTime time.Duration
}

// GetConnectRetryConfig returns the connect backoff for the current environment.
// Test environments use much shorter bounds.
func (c Config) GetConnectRetryConfig() ConnectRetryConfig {
	if c.IsTest() {
		return ConnectRetryConfig{
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			MaxElapsedTime:  200 * time.Millisecond,
		}
	}
	return ConnectRetryConfig{
		InitialInterval: c.DBConnectInitialInterval,
		MaxInterval:     c.DBConnectMaxInterval,
		MaxElapsedTime:  c.DBConnectTimeout,
	}
}
