// Package config provides configuration types and helpers for keyshape.
package config

// Config holds the application-wide configuration.
type Config struct {
	Format    string      `mapstructure:"format"`
	Verbose   bool        `mapstructure:"verbose"`
	JSONInput bool        `mapstructure:"json_input"`
	NoColor   bool        `mapstructure:"no_color"`
	Watch     WatchConfig `mapstructure:"watch"`
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	// Debounce is how long to wait after the last write event before
	// re-extracting, e.g. "500ms" or "2s".
	Debounce string `mapstructure:"debounce"`
}
