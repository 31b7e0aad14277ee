// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RecomputeQueueSize bounds the in-memory recompute queue.
	RecomputeQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of recompute workers.
	WorkerCount int `koanf:"worker_count"`

	// CoalesceSize caps the pending-recompute tracker.
	CoalesceSize int `koanf:"coalesce_size"`

	// ShardCount configures the number of shards in the document store.
	ShardCount int `koanf:"shard_count"`

	// RedisAddr, when set, backs the habit ledger with Redis instead of
	// the in-memory slot store. Format host:port.
	RedisAddr string `koanf:"redis_addr"`

	// RedisKeyPrefix namespaces all Redis keys.
	RedisKeyPrefix string `koanf:"redis_key_prefix"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		RecomputeQueueSize: 10_000,
		WorkerCount:        runtime.NumCPU() * 2,
		CoalesceSize:       50_000,
		ShardCount:         8,
		RedisAddr:          "",
		RedisKeyPrefix:     "ecotrace:",
	}
}
