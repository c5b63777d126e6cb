package env

import (
	"errors"
	"fmt"
	"fruit_slots/internal/config"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Game      gameConfig      `yaml:"game"`
	Animation animationConfig `yaml:"animation"`
}

type gameConfig struct {
	Balance int `yaml:"start_balance"`
	Min     int `yaml:"min_bet"`
	Max     int `yaml:"max_bet"`
	Step    int `yaml:"bet_step"`
}

type animationConfig struct {
	Interval time.Duration `yaml:"frame_interval"`
	Frames   int           `yaml:"min_frames"`
	Jitter   int           `yaml:"frame_jitter"`
	Stagger  time.Duration `yaml:"reel_stagger"`
}

// Значения по умолчанию повторяют браузерную версию игры
func defaultFileConfig() fileConfig {
	return fileConfig{
		Game: gameConfig{
			Balance: 1000,
			Min:     10,
			Max:     100,
			Step:    10,
		},
		Animation: animationConfig{
			Interval: 100 * time.Millisecond,
			Frames:   20,
			Jitter:   10,
			Stagger:  200 * time.Millisecond,
		},
	}
}

// NewGameConfigFromYAML читает секцию game из yaml файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	cfg, err := readFileConfig(path)
	if err != nil {
		return nil, err
	}
	return &cfg.Game, nil
}

// NewAnimationConfigFromYAML читает секцию animation из yaml файла
func NewAnimationConfigFromYAML(path string) (config.AnimationConfig, error) {
	cfg, err := readFileConfig(path)
	if err != nil {
		return nil, err
	}
	return &cfg.Animation, nil
}

func readFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseFileConfig(data)
}

func parseFileConfig(data []byte) (*fileConfig, error) {
	// Незаданные в файле поля остаются значениями по умолчанию
	cfg := defaultFileConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := cfg.Game.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Animation.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (g *gameConfig) validate() error {
	switch {
	case g.Step <= 0:
		return errors.New("bet_step must be positive")
	case g.Min <= 0 || g.Min%g.Step != 0:
		return errors.New("min_bet must be a positive multiple of bet_step")
	case g.Max < g.Min || g.Max%g.Step != 0:
		return errors.New("max_bet must be a multiple of bet_step not less than min_bet")
	case g.Balance < 0:
		return errors.New("start_balance must not be negative")
	}
	return nil
}

func (a *animationConfig) validate() error {
	switch {
	case a.Interval < 0 || a.Stagger < 0:
		return errors.New("animation durations must not be negative")
	case a.Frames <= 0:
		return errors.New("min_frames must be positive")
	case a.Jitter < 0:
		return errors.New("frame_jitter must not be negative")
	}
	return nil
}

func (g *gameConfig) StartBalance() int { return g.Balance }
func (g *gameConfig) MinBet() int       { return g.Min }
func (g *gameConfig) MaxBet() int       { return g.Max }
func (g *gameConfig) BetStep() int      { return g.Step }

func (a *animationConfig) FrameInterval() time.Duration { return a.Interval }
func (a *animationConfig) MinFrames() int               { return a.Frames }
func (a *animationConfig) FrameJitter() int             { return a.Jitter }
func (a *animationConfig) ReelStagger() time.Duration   { return a.Stagger }
