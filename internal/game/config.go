package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/wrapsnake/internal/theme"
)

// DefaultTickInterval is how long each tick waits for input.
const DefaultTickInterval = 100 * time.Millisecond

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible food placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// TickInterval bounds the input wait of a single tick.
	TickInterval time.Duration

	// AutoAdvance replays the last direction on ticks without input.
	// When false the snake only moves on a key press.
	AutoAdvance bool

	// Sound enables tones on eat and crash.
	Sound bool

	// Theme names the colour theme from themes.json.
	Theme string
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		TickInterval: DefaultTickInterval,
		Theme:        theme.DefaultName,
	}
}

// ConfigFromEnv reads WRAPSNAKE_* variables over the defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("WRAPSNAKE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("WRAPSNAKE_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("WRAPSNAKE_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("WRAPSNAKE_TICK_MS: %w", err)
		}
		if ms <= 0 {
			return cfg, fmt.Errorf("WRAPSNAKE_TICK_MS: must be positive, got %d", ms)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}

	var err error
	if cfg.AutoAdvance, err = envBool("WRAPSNAKE_AUTO_ADVANCE"); err != nil {
		return cfg, err
	}
	if cfg.Sound, err = envBool("WRAPSNAKE_SOUND"); err != nil {
		return cfg, err
	}

	if v := os.Getenv("WRAPSNAKE_THEME"); v != "" {
		cfg.Theme = v
	}

	return cfg, nil
}

// envBool parses a boolean variable; unset means false.
func envBool(name string) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
