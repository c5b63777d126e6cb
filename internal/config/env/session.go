package env

import (
	"fruit_slots/internal/config"
	"time"
)

const (
	sessionTTLEnvName             = "SESSION_TTL"
	sessionCleanupIntervalEnvName = "SESSION_CLEANUP_INTERVAL"

	defaultSessionTTL      = 30 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

type sessionConfig struct {
	ttl             time.Duration
	cleanupInterval time.Duration
}

func NewSessionConfig() (config.SessionConfig, error) {
	ttl, err := durationOrDefault(sessionTTLEnvName, defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cleanup, err := durationOrDefault(sessionCleanupIntervalEnvName, defaultCleanupInterval)
	if err != nil {
		return nil, err
	}

	return &sessionConfig{
		ttl:             ttl,
		cleanupInterval: cleanup,
	}, nil
}

func (cfg *sessionConfig) TTL() time.Duration {
	return cfg.ttl
}

func (cfg *sessionConfig) CleanupInterval() time.Duration {
	return cfg.cleanupInterval
}
