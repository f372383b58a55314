// Package config handles global configuration and data paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/ppinet/config.yml.
type GlobalConfig struct {
	BioGRIDAccessKey string `yaml:"biogrid_access_key,omitempty"`
	DefaultOrganism  string `yaml:"default_organism,omitempty"` // named ("human") or numeric taxon
	STRINGLimit      int    `yaml:"string_limit,omitempty"`
	HTTPTimeoutSecs  int    `yaml:"http_timeout_seconds,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "ppinet"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// DataDirName is the directory name under XDG_DATA_HOME.
	DataDirName = "ppinet"
	// DBFile is the network store file name.
	DBFile = "networks.db"
)

// Environment variables that override the config file.
const (
	EnvBioGRIDKey = "PPINET_BIOGRID_KEY"
	// EnvBioGRIDKeyAlt matches the name BioGRID's own docs use.
	EnvBioGRIDKeyAlt = "BIOGRID_ACCESS_KEY"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/ppinet/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// DataDir returns the directory holding the network store.
// Respects XDG_DATA_HOME, defaults to ~/.local/share/ppinet.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, DataDirName)
}

// DBPath returns the path to the network store database.
func DBPath() string {
	return filepath.Join(DataDir(), DBFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// Save writes the global configuration, creating the directory if needed.
func (c *GlobalConfig) Save() error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ResetGlobalConfigCache()
	return nil
}

// GetBioGRIDAccessKey returns the BioGRID access key. Environment variables
// take precedence over the config file so keys can live in .env files.
func GetBioGRIDAccessKey() string {
	if key := os.Getenv(EnvBioGRIDKey); key != "" {
		return key
	}
	if key := os.Getenv(EnvBioGRIDKeyAlt); key != "" {
		return key
	}
	cfg, _ := LoadGlobalConfig()
	return cfg.BioGRIDAccessKey
}

// GetDefaultOrganism returns the configured default organism, or "human".
func GetDefaultOrganism() string {
	cfg, _ := LoadGlobalConfig()
	if cfg.DefaultOrganism != "" {
		return cfg.DefaultOrganism
	}
	return "human"
}

// GetSTRINGLimit returns the configured STRING interaction limit, or 0 to
// use the client default.
func GetSTRINGLimit() int {
	cfg, _ := LoadGlobalConfig()
	return cfg.STRINGLimit
}

// GetHTTPTimeout returns the configured HTTP request timeout, or 0 to use
// the client default.
func GetHTTPTimeout() time.Duration {
	cfg, _ := LoadGlobalConfig()
	if cfg.HTTPTimeoutSecs <= 0 {
		return 0
	}
	return time.Duration(cfg.HTTPTimeoutSecs) * time.Second
}
