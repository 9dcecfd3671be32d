// Package config loads uecheck settings from YAML files and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete uecheck configuration.
type Config struct {
	Version  int           `yaml:"version" json:"version"`
	Probes   ProbesConfig  `yaml:"probes" json:"probes"`
	Engine   EngineConfig  `yaml:"engine" json:"engine"`
	Android  AndroidConfig `yaml:"android" json:"android"`
	Linux    LinuxConfig   `yaml:"linux" json:"linux"`
	Script   ScriptConfig  `yaml:"script" json:"script"`
	LogLevel string        `yaml:"log_level" json:"log_level"`
}

// ProbesConfig configures probe execution.
type ProbesConfig struct {
	// Timeout bounds every spawned diagnostic process (e.g. "30s").
	Timeout string `yaml:"timeout" json:"timeout"`
	// Parallelism is the maximum number of probes running at once.
	Parallelism int `yaml:"parallelism" json:"parallelism"`
}

// EngineConfig configures the engine locator.
type EngineConfig struct {
	// ExtraRoots are searched after the built-in candidates and before
	// environment variables.
	ExtraRoots []string `yaml:"extra_roots" json:"extra_roots"`
	// EnvVars name environment variables holding an engine root, in order.
	EnvVars []string `yaml:"env_vars" json:"env_vars"`
}

// AndroidConfig configures the Android SDK and NDK probes.
type AndroidConfig struct {
	// APILevels is the allow-list of platform API levels.
	APILevels []int `yaml:"api_levels" json:"api_levels"`
	// NDKHint is the NDK version recommended in NotFound details.
	NDKHint string `yaml:"ndk_hint" json:"ndk_hint"`
}

// LinuxConfig configures the cross-compile toolchain probe.
type LinuxConfig struct {
	ToolchainRoots []string `yaml:"toolchain_roots" json:"toolchain_roots"`
}

// ScriptConfig configures launcher script persistence.
type ScriptConfig struct {
	// Retries is how many times a failed delete or write is retried.
	Retries int `yaml:"retries" json:"retries"`
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Probes: ProbesConfig{
			Timeout:     "30s",
			Parallelism: 4,
		},
		Engine: EngineConfig{
			EnvVars: []string{"UE4_ROOT", "UNREAL_ENGINE_ROOT"},
		},
		Android: AndroidConfig{
			APILevels: []int{28, 29, 30},
			NDKHint:   "r21b",
		},
		Script: ScriptConfig{
			Retries: 2,
		},
		LogLevel: "warn",
	}
}

// ProbeTimeout returns the parsed probe timeout, falling back to 30s.
func (c *Config) ProbeTimeout() time.Duration {
	d, err := time.ParseDuration(c.Probes.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetUserConfigPath returns the path to the user configuration file.
// It follows XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/uecheck/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/uecheck/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "uecheck", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "uecheck", "config.yaml")
	}
	return filepath.Join(home, ".config", "uecheck", "config.yaml")
}

// loadUserConfig loads the user configuration file if it exists.
// Returns nil config and nil error if the file doesn't exist.
func loadUserConfig() (*Config, error) {
	configPath := GetUserConfigPath()
	if !fileExists(configPath) {
		return nil, nil
	}

	parsed, err := parseYAML(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config from %s: %w", configPath, err)
	}
	return parsed, nil
}

// Load loads configuration for the given working directory.
// It applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User config (~/.config/uecheck/config.yaml)
//  3. Project config (.uecheck.yaml in dir)
//  4. Environment variables (UECHECK_*)
func Load(dir string) (*Config, error) {
	return load(dir, "")
}

// LoadWithFile behaves like Load but reads the project layer from an
// explicit file instead of searching dir.
func LoadWithFile(path string) (*Config, error) {
	return load("", path)
}

func load(dir, explicit string) (*Config, error) {
	cfg := NewConfig()

	if userCfg, err := loadUserConfig(); err != nil {
		return nil, err
	} else if userCfg != nil {
		cfg.mergeWith(userCfg)
	}

	if explicit != "" {
		parsed, err := parseYAML(explicit)
		if err != nil {
			return nil, err
		}
		cfg.mergeWith(parsed)
	} else if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromFile attempts to load configuration from .uecheck.yaml or .uecheck.yml.
func (c *Config) loadFromFile(dir string) error {
	for _, name := range []string{".uecheck.yaml", ".uecheck.yml"} {
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			continue
		}
		parsed, err := parseYAML(path)
		if err != nil {
			return err
		}
		c.mergeWith(parsed)
		return nil
	}
	return nil
}

func parseYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &parsed, nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	if other.Probes.Timeout != "" {
		c.Probes.Timeout = other.Probes.Timeout
	}
	if other.Probes.Parallelism != 0 {
		c.Probes.Parallelism = other.Probes.Parallelism
	}

	if len(other.Engine.ExtraRoots) > 0 {
		c.Engine.ExtraRoots = append(c.Engine.ExtraRoots, other.Engine.ExtraRoots...)
	}
	if len(other.Engine.EnvVars) > 0 {
		c.Engine.EnvVars = other.Engine.EnvVars
	}

	if len(other.Android.APILevels) > 0 {
		c.Android.APILevels = other.Android.APILevels
	}
	if other.Android.NDKHint != "" {
		c.Android.NDKHint = other.Android.NDKHint
	}

	if len(other.Linux.ToolchainRoots) > 0 {
		c.Linux.ToolchainRoots = append(c.Linux.ToolchainRoots, other.Linux.ToolchainRoots...)
	}

	// A file cannot lower retries to zero; use UECHECK_SCRIPT_RETRIES=0.
	if other.Script.Retries != 0 {
		c.Script.Retries = other.Script.Retries
	}

	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// applyEnvOverrides applies UECHECK_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("UECHECK_PROBE_TIMEOUT"); v != "" {
		c.Probes.Timeout = v
	}
	if v := os.Getenv("UECHECK_PROBE_PARALLELISM"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Probes.Parallelism = n
		}
	}
	if v := os.Getenv("UECHECK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	// UECHECK_ENGINE_ROOT is searched before any configured extra root.
	if v := os.Getenv("UECHECK_ENGINE_ROOT"); v != "" {
		c.Engine.ExtraRoots = append([]string{v}, c.Engine.ExtraRoots...)
	}
	// Explicit zero is allowed from the environment.
	if v := os.Getenv("UECHECK_SCRIPT_RETRIES"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Script.Retries = n
		}
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	d, err := time.ParseDuration(c.Probes.Timeout)
	if err != nil {
		return fmt.Errorf("probes.timeout must be a duration, got %q", c.Probes.Timeout)
	}
	if d <= 0 {
		return fmt.Errorf("probes.timeout must be positive, got %s", c.Probes.Timeout)
	}
	if c.Probes.Parallelism < 1 {
		return fmt.Errorf("probes.parallelism must be at least 1, got %d", c.Probes.Parallelism)
	}
	if c.Script.Retries < 0 {
		return fmt.Errorf("script.retries must be non-negative, got %d", c.Script.Retries)
	}
	if len(c.Android.APILevels) == 0 {
		return fmt.Errorf("android.api_levels must not be empty")
	}
	for _, level := range c.Android.APILevels {
		if level <= 0 {
			return fmt.Errorf("android.api_levels must be positive, got %d", level)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("log_level must be 'debug', 'info', 'warn', or 'error', got %s", c.LogLevel)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
