/*
Package config manages the TOML config for linepick.

The file lives at ~/.config/linepick/config.toml and is created with defaults
on first run. A file that fails to decode is salvaged section by section.

	[picker]
	visible_limit = 20
	prompt = "> "
	unique = false

	[ui]
	match_color = "212"
	truncate = true

	[server]
	max_limit = 200
	max_query = 256
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/linepick/internal/utils"
	"github.com/charmbracelet/log"
)

// AppName names the config directory
const AppName = "linepick"

// Config holds the entire config structure
type Config struct {
	Picker PickerConfig `toml:"picker"`
	UI     UIConfig     `toml:"ui"`
	Server ServerConfig `toml:"server"`
}

// PickerConfig has interactive search options.
type PickerConfig struct {
	VisibleLimit int    `toml:"visible_limit"`
	Prompt       string `toml:"prompt"`
	Unique       bool   `toml:"unique"`
}

// UIConfig holds painting options.
type UIConfig struct {
	MatchColor string `toml:"match_color"`
	Truncate   bool   `toml:"truncate"`
}

// ServerConfig holds IPC server limits.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
	MaxQuery int `toml:"max_query"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/linepick
// 2. ~/Library/Application Support/linepick (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", AppName)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", AppName)
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path
// 3. Builtin defaults
//
// The returned path is empty when builtin defaults are used.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			VisibleLimit: 20,
			Prompt:       "> ",
			Unique:       false,
		},
		UI: UIConfig{
			MatchColor: "212",
			Truncate:   true,
		},
		Server: ServerConfig{
			MaxLimit: 200,
			MaxQuery: 256,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Missing keys keep their defaults and
// out-of-range values are reset by Validate.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.Validate()
	return config, nil
}

// tryPartialParse salvages whatever sections decode cleanly
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "picker"); ok {
		extractPickerConfig(section, &config.Picker)
	}
	if section, ok := utils.ExtractSection(tempConfig, "ui"); ok {
		extractUIConfig(section, &config.UI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	config.Validate()
	return config, nil
}

func extractPickerConfig(data map[string]any, picker *PickerConfig) {
	if val, ok := utils.ExtractInt64(data, "visible_limit"); ok {
		picker.VisibleLimit = val
	}
	if val, ok := utils.ExtractString(data, "prompt"); ok {
		picker.Prompt = val
	}
	if val, ok := utils.ExtractBool(data, "unique"); ok {
		picker.Unique = val
	}
}

func extractUIConfig(data map[string]any, ui *UIConfig) {
	if val, ok := utils.ExtractString(data, "match_color"); ok {
		ui.MatchColor = val
	}
	if val, ok := utils.ExtractBool(data, "truncate"); ok {
		ui.Truncate = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query"); ok {
		server.MaxQuery = val
	}
}

// Validate resets non-positive limits to their defaults
func (c *Config) Validate() {
	defaults := DefaultConfig()
	if c.Picker.VisibleLimit <= 0 {
		log.Warnf("visible_limit must be positive, got %d. Using %d", c.Picker.VisibleLimit, defaults.Picker.VisibleLimit)
		c.Picker.VisibleLimit = defaults.Picker.VisibleLimit
	}
	if c.Server.MaxLimit <= 0 {
		c.Server.MaxLimit = defaults.Server.MaxLimit
	}
	if c.Server.MaxQuery <= 0 {
		c.Server.MaxQuery = defaults.Server.MaxQuery
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
