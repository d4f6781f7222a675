package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/regxml/pkg/regxml"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config is the content of regxml.yaml.
type Config struct {
	// Dictionaries lists interchange documents or snapshots loaded by default.
	// Relative paths are resolved against the directory holding the config file.
	Dictionaries []string `yaml:"dictionaries"`
	CacheDir     string   `yaml:"cache_dir,omitempty"`
	Verbose      bool     `yaml:"verbose,omitempty"`
}

// Load reads regxml.yaml from dir.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, regxml.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", regxml.ErrInvalidConfig, regxml.ConfigFileName, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.resolvePaths(dir)
	return &cfg, nil
}

// Resolve builds the effective configuration for dir: it loads dir/.env into
// the process environment when present, reads regxml.yaml if there is one,
// and applies environment overrides on top.
func Resolve(dir string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg, err := Load(dir)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
		cfg = &Config{}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from REGXML_DICTIONARIES and REGXML_VERBOSE.
// REGXML_DICTIONARIES uses the platform path-list separator and replaces the
// configured list.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(regxml.EnvDictionaries); v != "" {
		var paths []string
		for _, p := range filepath.SplitList(v) {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		c.Dictionaries = paths
	}

	if v := getenv(regxml.EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", regxml.ErrInvalidConfig, regxml.EnvVerbose, v)
		}
		c.Verbose = verbose
	}
	return nil
}

func (c *Config) validate() error {
	for i, p := range c.Dictionaries {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: dictionaries[%d] is empty", regxml.ErrInvalidConfig, i)
		}
	}
	return nil
}

func (c *Config) resolvePaths(dir string) {
	for i, p := range c.Dictionaries {
		if !filepath.IsAbs(p) {
			c.Dictionaries[i] = filepath.Join(dir, p)
		}
	}
	if c.CacheDir != "" && !filepath.IsAbs(c.CacheDir) {
		c.CacheDir = filepath.Join(dir, c.CacheDir)
	}
}
