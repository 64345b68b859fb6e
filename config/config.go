package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/lixenwraith/slime-arena/parameter"
)

// ErrInvalidConfig is the cause of every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment variable names
const (
	EnvDifficulty   = "SLIME_ARENA_DIFFICULTY"
	EnvTicksPerStep = "SLIME_ARENA_TICKS_PER_STEP"
	EnvMaxSteps     = "SLIME_ARENA_MAX_STEPS"
	EnvSeed         = "SLIME_ARENA_SEED"
	EnvDBPath       = "SLIME_ARENA_DB_PATH"
	EnvAudioEnabled = "SLIME_ARENA_AUDIO_ENABLED"
	EnvMasterVolume = "SLIME_ARENA_MASTER_VOLUME"
)

// Config holds run settings shared by the binaries
type Config struct {
	Difficulty int
	// TicksPerStep is how many physics ticks one policy decision spans
	TicksPerStep int
	// MaxSteps truncates an episode, counted in ticks
	MaxSteps int
	Seed     int64
	DBPath   string

	AudioEnabled bool
	MasterVolume float64 // 0.0-1.0
}

// DefaultConfig returns the stock settings
func DefaultConfig() *Config {
	return &Config{
		Difficulty:   parameter.MinDifficulty,
		TicksPerStep: 6,
		MaxSteps:     600,
		Seed:         1,
		DBPath:       "slime-arena.db",
		AudioEnabled: true,
		MasterVolume: 0.5,
	}
}

// LoadConfig loads configuration from environment variables over the defaults
// Unparseable values keep the default
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvDifficulty); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			cfg.Difficulty = val
		}
	}

	if v := os.Getenv(EnvTicksPerStep); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			cfg.TicksPerStep = val
		}
	}

	if v := os.Getenv(EnvMaxSteps); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			cfg.MaxSteps = val
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			cfg.AudioEnabled = val
		}
	}

	// Master volume is given as 0-100
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	return cfg
}

// Validate rejects settings the engine or runner cannot honor
func (c *Config) Validate() error {
	if _, err := parameter.TuningForLevel(c.Difficulty); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "difficulty %d", c.Difficulty)
	}
	if c.TicksPerStep < 1 {
		return errors.Wrapf(ErrInvalidConfig, "ticks per step %d", c.TicksPerStep)
	}
	if c.MaxSteps < 1 {
		return errors.Wrapf(ErrInvalidConfig, "max steps %d", c.MaxSteps)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return errors.Wrapf(ErrInvalidConfig, "master volume %v", c.MasterVolume)
	}
	return nil
}
