package config

import (
	"os"

	"wolfgoatpig-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Wolf Goat Pig server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Round struct {
		// LogRetention is how many log messages are kept per active round
		LogRetention int `yaml:"logRetention" envconfig:"log_retention"`
	}
}

var config Config

// DefaultConfig returns the configuration before any file or environment
// overrides are applied
func DefaultConfig() Config {
	var c Config
	c.MigrationsPath = "./sql"
	c.Round.LogRetention = 1000
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults and environment are still applied.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("WGP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("wgp", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
