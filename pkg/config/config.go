/*
Package config manages TOML config for wordcheck.

A missing config file is created with defaults on first run. A file that
fails to decode as a whole is parsed section by section, so one bad value
does not throw away the rest.

	[dict]
	dir = "data"
	locale = "en_US"
	flag = ""

	[suggest]
	default_limit = 5
	max_limit = 64

	[server]
	max_word_length = 64

	[cli]
	default_limit = 5
	color = true
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

const configFileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Dict    DictConfig    `toml:"dict"`
	Suggest SuggestConfig `toml:"suggest"`
	Server  ServerConfig  `toml:"server"`
	CLI     CliConfig     `toml:"cli"`
}

// DictConfig selects the dictionary to load.
type DictConfig struct {
	Dir    string `toml:"dir"`
	Locale string `toml:"locale"`
	// Flag forces a FLAG encoding ("long", "num", "UTF-8") for affix files
	// that do not declare one.
	Flag string `toml:"flag"`
}

// SuggestConfig bounds suggestion and completion requests.
type SuggestConfig struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxWordLength int `toml:"max_word_length"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	Color        bool `toml:"color"`
}

// GetConfigDir returns the config directory: the platform config dir when
// writable, otherwise a fallback picked by the path resolver.
func GetConfigDir() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		log.Errorf("Failed to resolve config directory: %v", err)
		return "", err
	}
	return filepath.Dir(pr.GetConfigPath(configFileName)), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordcheck/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
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
		Dict: DictConfig{
			Dir:    "data",
			Locale: "en_US",
		},
		Suggest: SuggestConfig{
			DefaultLimit: 5,
			MaxLimit:     64,
		},
		Server: ServerConfig{
			MaxWordLength: 64,
		},
		CLI: CliConfig{
			DefaultLimit: 5,
			Color:        true,
		},
	}
}

// ClampLimit maps a requested result count onto the configured bounds.
// Zero or negative requests get the default.
func (c *Config) ClampLimit(limit int) int {
	if limit <= 0 {
		limit = c.Suggest.DefaultLimit
	}
	if c.Suggest.MaxLimit > 0 && limit > c.Suggest.MaxLimit {
		limit = c.Suggest.MaxLimit
	}
	return limit
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

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section that decodes and defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		extractSuggestConfig(section, &config.Suggest)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_word_length"); ok {
			config.Server.MaxWordLength = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		dict.Dir = val
	}
	if val, ok := utils.ExtractString(data, "locale"); ok {
		dict.Locale = val
	}
	if val, ok := utils.ExtractString(data, "flag"); ok {
		dict.Flag = val
	}
}

func extractSuggestConfig(data map[string]any, suggest *SuggestConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		suggest.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		suggest.MaxLimit = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "color"); ok {
		cli.Color = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the suggestion limits and saves to file
func (c *Config) Update(configPath string, defaultLimit, maxLimit *int) error {
	if defaultLimit != nil {
		c.Suggest.DefaultLimit = *defaultLimit
	}
	if maxLimit != nil {
		c.Suggest.MaxLimit = *maxLimit
	}
	return SaveConfig(c, configPath)
}
