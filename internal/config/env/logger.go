package env

import (
	"fmt"
	"fruit_slots/internal/config"
	"os"
	"strconv"
)

const (
	logModeEnvName  = "LOG_MODE"
	logLevelEnvName = "LOG_LEVEL"
	logDirEnvName   = "LOG_DIR"
	logFileEnvName  = "LOG_FILE"
)

type loggerConfig struct {
	mode  string
	level string
	dir   string
	file  bool
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	cfg := &loggerConfig{
		mode:  os.Getenv(logModeEnvName),
		level: os.Getenv(logLevelEnvName),
		dir:   os.Getenv(logDirEnvName),
	}
	if cfg.mode == "" {
		cfg.mode = "dev"
	}
	if cfg.level == "" {
		cfg.level = "debug"
	}

	if raw := os.Getenv(logFileEnvName); raw != "" {
		file, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", logFileEnvName, err)
		}
		cfg.file = file
	}

	return cfg, nil
}

func (cfg *loggerConfig) Mode() string {
	return cfg.mode
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}

func (cfg *loggerConfig) Dir() string {
	return cfg.dir
}

func (cfg *loggerConfig) File() bool {
	return cfg.file
}
