package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spacedodger/internal/game"
)

// Host holds the settings shared by every front end.
type Host struct {
	Seed        int64 // 0 seeds from the clock
	Extras      bool  // Enemy fire, power-ups and the boss
	Survival    bool  // Passive points for staying alive
	LogLevel    log.Level
	IdleTimeout time.Duration // 0 disables
}

// LoadHost reads DODGER_SEED, DODGER_EXTRAS, DODGER_SURVIVAL,
// DODGER_LOG_LEVEL and DODGER_IDLE_TIMEOUT (seconds). All malformed variables are reported
// together; the returned Host then holds the fallbacks for them.
func LoadHost(idleDefault time.Duration) (Host, error) {
	var errs []error
	h := Host{LogLevel: log.InfoLevel}

	var err error
	if h.Seed, err = GetEnvInt64("DODGER_SEED", 0); err != nil {
		errs = append(errs, err)
	}
	if h.Extras, err = GetEnvBool("DODGER_EXTRAS", true); err != nil {
		errs = append(errs, err)
	}
	if h.Survival, err = GetEnvBool("DODGER_SURVIVAL", true); err != nil {
		errs = append(errs, err)
	}

	idle, err := GetEnvFloat("DODGER_IDLE_TIMEOUT", idleDefault.Seconds())
	if err == nil && idle < 0 {
		err = fmt.Errorf("DODGER_IDLE_TIMEOUT=%v: %w", idle, ErrInvalidValue)
		idle = idleDefault.Seconds()
	}
	if err != nil {
		errs = append(errs, err)
	}
	h.IdleTimeout = time.Duration(idle * float64(time.Second))

	if level := GetEnv("DODGER_LOG_LEVEL", ""); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			errs = append(errs, fmt.Errorf("DODGER_LOG_LEVEL=%q: %w", level, ErrInvalidValue))
		} else {
			h.LogLevel = parsed
		}
	}

	return h, errors.Join(errs...)
}

// GameConfig returns the session rules for the host.
func (h Host) GameConfig() game.Config {
	var extras game.Extras
	if h.Extras {
		extras = game.AllExtras()
	}
	extras.Survival = h.Survival
	return game.DefaultConfig().WithExtras(extras)
}

// Rand returns the game's randomness source.
func (h Host) Rand() *rand.Rand {
	seed := h.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Logger returns a timestamped logger at the host's level.
func (h Host) Logger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           h.LogLevel,
		ReportTimestamp: true,
	})
}
