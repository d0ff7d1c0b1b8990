// Package config provides file-based configuration for self-contained
// deployment: the config lives next to the executable and a default one is
// written on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AppConfig is the root configuration structure.
type AppConfig struct {
	// Server configuration
	Server ServerConfig `yaml:"server"`

	// Storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Conversion configuration
	Conversion ConversionConfig `yaml:"conversion"`

	// Advanced options
	Advanced AdvancedConfig `yaml:"advanced"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int    `yaml:"port"`
	BindAddress  string `yaml:"bindAddress"`
	EnableCORS   bool   `yaml:"enableCORS"`
	AllowOrigins string `yaml:"allowOrigins"`
	ReadTimeout  int    `yaml:"readTimeoutSeconds"`
	WriteTimeout int    `yaml:"writeTimeoutSeconds"`
	IdleTimeout  int    `yaml:"idleTimeoutSeconds"`
	BodyLimit    string `yaml:"bodyLimit"`
}

// StorageConfig contains scratch storage settings.
type StorageConfig struct {
	ScratchDirectory string `yaml:"scratchDirectory"`
}

// ConversionConfig contains settings for the external conversion tool.
type ConversionConfig struct {
	// BinaryPath is the markitdown executable; resolved from PATH when
	// not absolute.
	BinaryPath string `yaml:"binaryPath"`
}

// AdvancedConfig contains tuning options.
type AdvancedConfig struct {
	EnableRequestLogging bool `yaml:"enableRequestLogging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8093,
			BindAddress:  "0.0.0.0",
			EnableCORS:   true,
			AllowOrigins: "*",
			ReadTimeout:  30,
			WriteTimeout: 120,
			IdleTimeout:  120,
			BodyLimit:    "256M",
		},
		Storage: StorageConfig{
			ScratchDirectory: "./data/scratch",
		},
		Conversion: ConversionConfig{
			BinaryPath: "markitdown",
		},
		Advanced: AdvancedConfig{
			EnableRequestLogging: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file, writing the default
// configuration there first if the file does not exist.
func LoadConfig(configPath string) (*AppConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		config.resolvePaths(filepath.Dir(configPath))
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnvironmentOverrides()
	config.resolvePaths(filepath.Dir(configPath))

	return config, nil
}

// Save writes the configuration to a YAML file.
func (c *AppConfig) Save(configPath string) error {
	output, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# Markdown Gateway configuration\n# This file is auto-generated on first run\n\n")
	content := append(header, output...)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides allows environment variables to override config values.
func (c *AppConfig) applyEnvironmentOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if scratch := os.Getenv("SCRATCH_DIR"); scratch != "" {
		c.Storage.ScratchDirectory = scratch
	}

	if binary := os.Getenv("MARKITDOWN_BIN"); binary != "" {
		c.Conversion.BinaryPath = binary
	}
}

// resolvePaths converts relative paths to absolute based on config file location.
func (c *AppConfig) resolvePaths(configDir string) {
	if !filepath.IsAbs(c.Storage.ScratchDirectory) {
		c.Storage.ScratchDirectory = filepath.Join(configDir, c.Storage.ScratchDirectory)
	}
}

// EnsureDirectories creates all configured directories.
func (c *AppConfig) EnsureDirectories() error {
	if err := os.MkdirAll(c.Storage.ScratchDirectory, 0755); err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return nil
}

// GetScratchDir returns the absolute scratch directory path.
func (c *AppConfig) GetScratchDir() string {
	return c.Storage.ScratchDirectory
}

// GetServerAddr returns the server bind address.
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}
