package cli

import (
	"log/slog"

	"github.com/saylorsolutions/modes/env"
)

// EnvPrefix is the prefix of environment variables read by [LoadConfig].
const EnvPrefix env.Prefix = "MODES"

const defaultUsageWidth = 80

// Config controls the ambient behavior of a [ModeSet].
type Config struct {
	LogLevel   slog.Level // LogLevel is the minimum level logged by the default logger.
	UsageWidth int        // UsageWidth is the column width that flag usage is wrapped to. Zero detects the terminal width.
	Color      bool       // Color enables colored usage headings when output is a terminal.
}

// DefaultConfig only logs warnings, detects the usage width, and allows color.
func DefaultConfig() Config {
	return Config{
		LogLevel: slog.LevelWarn,
		Color:    true,
	}
}

// LoadConfig starts from [DefaultConfig] and applies these environment variables.
//
//   - MODES_LOG_LEVEL: one of debug, info, warn, or error.
//   - MODES_USAGE_WIDTH: a positive column count.
//   - MODES_COLOR: a boolean, see [env.DefaultTrue] and [env.DefaultFalse].
//   - NO_COLOR: disables color if set to a non-empty value.
func LoadConfig() Config {
	config := DefaultConfig()
	if level := EnvPrefix.Val("log_level", ""); len(level) > 0 {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			config.LogLevel = parsed
		}
	}
	if width := EnvPrefix.Int("usage_width", 0); width > 0 {
		config.UsageWidth = int(width)
	}
	config.Color = EnvPrefix.Bool("color", config.Color) && len(env.Prefix("").Val("no_color", "")) == 0
	return config
}
