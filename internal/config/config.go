package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	StartBalance() int
	MinBet() int
	MaxBet() int
	BetStep() int
}

type AnimationConfig interface {
	FrameInterval() time.Duration
	MinFrames() int
	FrameJitter() int
	ReelStagger() time.Duration
}

type HTTPConfig interface {
	Address() string
	ReadTimeout() time.Duration
	IdleTimeout() time.Duration
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type SessionConfig interface {
	TTL() time.Duration
	CleanupInterval() time.Duration
}

type LoggerConfig interface {
	Mode() string
	Level() string
	Dir() string
	File() bool
}
