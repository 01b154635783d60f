// Package config provides configuration loading for wastewise.
// Values come from an optional TOML file under the XDG config dir,
// overridden by WASTEWISE_* environment variables. Invalid values warn
// and fall back to defaults rather than failing the command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/wastewise/wastewise/internal/colors"
)

// Config holds the effective session configuration.
type Config struct {
	// StartingBalance is the point balance a session begins with.
	StartingBalance int `toml:"starting_balance"`
	// NoticeTTLMillis is the display duration for simple confirmations.
	NoticeTTLMillis int `toml:"notice_ttl_ms"`
	// RichNoticeTTLMillis is the display duration for messages with
	// more content, such as failure explanations.
	RichNoticeTTLMillis int `toml:"rich_notice_ttl_ms"`
	// ScanDelayMillis is the simulated sensor refresh duration.
	ScanDelayMillis int `toml:"scan_delay_ms"`
	// PassThreshold is the quiz pass fraction in (0, 1].
	PassThreshold float64 `toml:"pass_threshold"`
	// LogEnabled toggles structured file logging.
	LogEnabled bool `toml:"log_enabled"`
	// LogLevel is the minimum level recorded: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StartingBalance:     2450,
		NoticeTTLMillis:     3000,
		RichNoticeTTLMillis: 4000,
		ScanDelayMillis:     1500,
		PassThreshold:       0.7,
		LogEnabled:          false,
		LogLevel:            "info",
	}
}

// NoticeTTL returns the confirmation display duration.
func (c Config) NoticeTTL() time.Duration {
	return time.Duration(c.NoticeTTLMillis) * time.Millisecond
}

// RichNoticeTTL returns the rich-message display duration.
func (c Config) RichNoticeTTL() time.Duration {
	return time.Duration(c.RichNoticeTTLMillis) * time.Millisecond
}

// ScanDelay returns the simulated refresh duration.
func (c Config) ScanDelay() time.Duration {
	return time.Duration(c.ScanDelayMillis) * time.Millisecond
}

// Path returns the config file location, following XDG_CONFIG_HOME.
func Path() string {
	if path := os.Getenv("WASTEWISE_CONFIG"); path != "" {
		return path
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wastewise", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wastewise", "config.toml")
}

// Load reads the config file if present, applies environment overrides
// and validates the result. A missing file is not an error.
func Load() Config {
	cfg := Default()

	data, err := os.ReadFile(Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		colors.Warning(fmt.Sprintf("failed to read config file: %v, using defaults", err))
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			colors.Warning(fmt.Sprintf("invalid config file: %v, using defaults", err))
			cfg = Default()
		}
	}

	applyEnv(&cfg)
	validate(&cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	overrideInt("WASTEWISE_STARTING_BALANCE", &cfg.StartingBalance)
	overrideInt("WASTEWISE_NOTICE_TTL_MS", &cfg.NoticeTTLMillis)
	overrideInt("WASTEWISE_RICH_NOTICE_TTL_MS", &cfg.RichNoticeTTLMillis)
	overrideInt("WASTEWISE_SCAN_DELAY_MS", &cfg.ScanDelayMillis)
	overrideFloat("WASTEWISE_PASS_THRESHOLD", &cfg.PassThreshold)
	overrideBool("WASTEWISE_LOG_ENABLED", &cfg.LogEnabled)
	if val := os.Getenv("WASTEWISE_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
}

func overrideInt(key string, dst *int) {
	val := os.Getenv(key)
	if val == "" {
		return
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		colors.Warning(fmt.Sprintf("invalid %s value '%s': must be an integer, ignoring", key, val))
		return
	}
	*dst = n
}

func overrideFloat(key string, dst *float64) {
	val := os.Getenv(key)
	if val == "" {
		return
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		colors.Warning(fmt.Sprintf("invalid %s value '%s': must be a number, ignoring", key, val))
		return
	}
	*dst = f
}

func overrideBool(key string, dst *bool) {
	val := os.Getenv(key)
	if val == "" {
		return
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	default:
		colors.Warning(fmt.Sprintf("invalid boolean value for %s: '%s', ignoring", key, val))
	}
}

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// validate normalizes out-of-range values back to defaults, warning once
// per key.
func validate(cfg *Config) {
	def := Default()
	if cfg.StartingBalance < 0 {
		colors.Warning(fmt.Sprintf("invalid starting_balance %d: must be non-negative, using default: %d", cfg.StartingBalance, def.StartingBalance))
		cfg.StartingBalance = def.StartingBalance
	}
	if cfg.NoticeTTLMillis <= 0 {
		colors.Warning(fmt.Sprintf("invalid notice_ttl_ms %d: must be positive, using default: %d", cfg.NoticeTTLMillis, def.NoticeTTLMillis))
		cfg.NoticeTTLMillis = def.NoticeTTLMillis
	}
	if cfg.RichNoticeTTLMillis <= 0 {
		colors.Warning(fmt.Sprintf("invalid rich_notice_ttl_ms %d: must be positive, using default: %d", cfg.RichNoticeTTLMillis, def.RichNoticeTTLMillis))
		cfg.RichNoticeTTLMillis = def.RichNoticeTTLMillis
	}
	if cfg.ScanDelayMillis <= 0 {
		colors.Warning(fmt.Sprintf("invalid scan_delay_ms %d: must be positive, using default: %d", cfg.ScanDelayMillis, def.ScanDelayMillis))
		cfg.ScanDelayMillis = def.ScanDelayMillis
	}
	if cfg.PassThreshold <= 0 || cfg.PassThreshold > 1 {
		colors.Warning(fmt.Sprintf("invalid pass_threshold %v: must be in (0, 1], using default: %v", cfg.PassThreshold, def.PassThreshold))
		cfg.PassThreshold = def.PassThreshold
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		colors.Warning(fmt.Sprintf("invalid log_level '%s': must be one of: debug, info, warn, error; using default: %s", cfg.LogLevel, def.LogLevel))
		cfg.LogLevel = def.LogLevel
	}
}
