package env

import (
	"fmt"
	"fruit_slots/internal/config"
	"net"
	"os"
	"time"
)

const (
	httpHostEnvName        = "HTTP_HOST"
	httpPortEnvName        = "HTTP_PORT"
	httpReadTimeoutEnvName = "HTTP_READ_TIMEOUT"
	httpIdleTimeoutEnvName = "HTTP_IDLE_TIMEOUT"

	defaultReadTimeout = 10 * time.Second
	defaultIdleTimeout = 60 * time.Second
)

type httpConfig struct {
	host        string
	port        string
	readTimeout time.Duration
	idleTimeout time.Duration
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		return nil, fmt.Errorf("http port not found")
	}

	readTimeout, err := durationOrDefault(httpReadTimeoutEnvName, defaultReadTimeout)
	if err != nil {
		return nil, err
	}

	idleTimeout, err := durationOrDefault(httpIdleTimeoutEnvName, defaultIdleTimeout)
	if err != nil {
		return nil, err
	}

	return &httpConfig{
		// Пустой хост слушает все интерфейсы
		host:        os.Getenv(httpHostEnvName),
		port:        port,
		readTimeout: readTimeout,
		idleTimeout: idleTimeout,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) ReadTimeout() time.Duration {
	return cfg.readTimeout
}

func (cfg *httpConfig) IdleTimeout() time.Duration {
	return cfg.idleTimeout
}

// durationOrDefault читает длительность из окружения, если переменная не задана - возвращает def
func durationOrDefault(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return def, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
