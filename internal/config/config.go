package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "TWINSIGHT_CONFIG"
	dbPathEnv     = "TWINSIGHT_DB"
	barWidthEnv   = "TWINSIGHT_BAR_WIDTH"
	asOfEnv       = "TWINSIGHT_AS_OF"

	defaultBarWidth = 40
)

// Config holds the settings shared across commands. Values come from the
// optional YAML file named by TWINSIGHT_CONFIG, overridden by environment
// variables; a .env file in the working directory is honored if present.
type Config struct {
	DBPath   string `yaml:"db_path"`
	BarWidth int    `yaml:"bar_width"`
	// DefaultAsOf pins the evaluation date (YYYY-MM-DD) for every run that
	// does not pass --as-of. Empty means today.
	DefaultAsOf string `yaml:"default_as_of"`
}

// Load resolves the effective configuration.
func Load() Config {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg.merge(fileCfg)
			}
		}
	}

	if v := os.Getenv(dbPathEnv); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(barWidthEnv); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			cfg.BarWidth = w
		}
	}
	if v := os.Getenv(asOfEnv); v != "" {
		cfg.DefaultAsOf = v
	}

	return cfg
}

func defaultConfig() Config {
	return Config{
		DBPath:   defaultDBPath(),
		BarWidth: defaultBarWidth,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "twinsight.db"
	}
	return filepath.Join(home, ".twinsight", "twinsight.db")
}

func (c *Config) merge(other Config) {
	if other.DBPath != "" {
		c.DBPath = other.DBPath
	}
	if other.BarWidth > 0 {
		c.BarWidth = other.BarWidth
	}
	if other.DefaultAsOf != "" {
		c.DefaultAsOf = other.DefaultAsOf
	}
}
