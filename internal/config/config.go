// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"resource-economy/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Data locates the input files
	Data DataConfig `json:"data"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Charts selects optional charts
	Charts ChartsConfig `json:"charts"`

	// Strict turns catalog validation issues into a fatal error
	Strict bool `json:"strict"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DataConfig locates the input files
type DataConfig struct {
	// Resources is the resource catalog file
	Resources string `json:"resources"`

	// BiomeSeasons is the biome season sequence file
	BiomeSeasons string `json:"biome_seasons"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Dir is the local output directory
	Dir string `json:"dir"`

	// DPI is the chart resolution
	DPI int `json:"dpi"`

	// Format is the default report format (cli, json, markdown)
	Format string `json:"format"`

	// Workbook also writes an xlsx export of every aggregation
	Workbook bool `json:"workbook"`

	// Manifest also writes manifest.json describing the run
	Manifest bool `json:"manifest"`

	// S3 publishes artifacts to a bucket instead of Dir when Bucket is set
	S3 S3Config `json:"s3"`
}

// S3Config contains object storage settings
type S3Config struct {
	Bucket         string `json:"bucket,omitempty"`
	Prefix         string `json:"prefix,omitempty"`
	Region         string `json:"region,omitempty"`
	Endpoint       string `json:"endpoint,omitempty"`
	AccessKey      string `json:"access_key,omitempty"`
	SecretKey      string `json:"secret_key,omitempty"`
	ForcePathStyle bool   `json:"force_path_style,omitempty"`
}

// Enabled reports whether artifacts go to S3
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// ChartsConfig selects optional charts
type ChartsConfig struct {
	// Timeline renders the biome timeline of the cheapest food
	Timeline bool `json:"timeline"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Resources:    filepath.Join("data", "resources.json"),
			BiomeSeasons: filepath.Join("data", "biome_seasons.json"),
		},
		Output: OutputConfig{
			Dir:      "analysis",
			DPI:      300,
			Format:   "cli",
			Workbook: false,
			Manifest: true,
		},
		Charts: ChartsConfig{
			Timeline: false,
		},
		Strict:  false,
		Logging: logging.DefaultConfig(),
	}
}

// Validate checks the configuration for values that cannot work
func (c *Config) Validate() error {
	if c.Data.Resources == "" {
		return fmt.Errorf("data.resources must be set")
	}
	if c.Data.BiomeSeasons == "" {
		return fmt.Errorf("data.biome_seasons must be set")
	}
	if c.Output.DPI <= 0 {
		return fmt.Errorf("output.dpi must be positive, got %d", c.Output.DPI)
	}
	if !c.Output.S3.Enabled() && c.Output.Dir == "" {
		return fmt.Errorf("output.dir must be set when no S3 bucket is configured")
	}
	if c.Output.S3.Enabled() && c.Output.S3.Region == "" {
		return fmt.Errorf("output.s3.region is required with output.s3.bucket")
	}
	switch c.Output.Format {
	case "cli", "json", "markdown":
	default:
		return fmt.Errorf("output.format must be cli, json or markdown, got %q", c.Output.Format)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
