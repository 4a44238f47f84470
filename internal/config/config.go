package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// PreviewMaxLines caps how many lines an expanded entry shows.
	// Zero shows the whole file.
	PreviewMaxLines int `mapstructure:"preview_max_lines"`
	// ShowIcons draws a filetype icon next to each entry.
	ShowIcons bool `mapstructure:"show_icons"`
	// WatchGitDir refreshes the view when the .git directory changes.
	// Off by default: the UI reacts to key presses only.
	WatchGitDir bool `mapstructure:"watch_git_dir"`
	// DebugLog is a file path for debug output; empty disables it.
	DebugLog string `mapstructure:"debug_log"`
	// MessageTimeoutSeconds is how long transient error messages stay
	// in the status bar before they dismiss themselves.
	MessageTimeoutSeconds int `mapstructure:"message_timeout_seconds"`
}

// Load reads configuration from ~/.config/gex/config.yaml (or TOML/JSON).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir := configDirectory()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("GEX")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine, defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("preview_max_lines", 200)
	v.SetDefault("show_icons", true)
	v.SetDefault("watch_git_dir", false)
	v.SetDefault("debug_log", "")
	v.SetDefault("message_timeout_seconds", 5)
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gex")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gex")
}
