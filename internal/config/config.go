package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// CoverImage is the hero image applied to the page's cover element
type CoverImage struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Config represents the blogpipe configuration
type Config struct {
	Source       string            `yaml:"source"`
	Template     string            `yaml:"template"`
	Mount        string            `yaml:"mount"`
	AssetDir     string            `yaml:"asset_dir"`
	Images       map[string]string `yaml:"images"`
	CoverImage   CoverImage        `yaml:"cover_image"`
	FetchTimeout time.Duration     `yaml:"-"` // Custom YAML handling below
	Listen       string            `yaml:"listen"`
	LogLevel     string            `yaml:"log_level"`
	OutputDir    string            `yaml:"output_dir"`
}

// rawConfig mirrors Config on disk, with the timeout kept as a duration string
type rawConfig struct {
	Source       string            `yaml:"source"`
	Template     string            `yaml:"template,omitempty"`
	Mount        string            `yaml:"mount"`
	AssetDir     string            `yaml:"asset_dir"`
	Images       map[string]string `yaml:"images,omitempty"`
	CoverImage   CoverImage        `yaml:"cover_image,omitempty"`
	FetchTimeout string            `yaml:"fetch_timeout"`
	Listen       string            `yaml:"listen"`
	LogLevel     string            `yaml:"log_level"`
	OutputDir    string            `yaml:"output_dir,omitempty"`
}

// DefaultImages is the image mapping for the Los Algodones pillar post
func DefaultImages() map[string]string {
	return map[string]string{
		"image2":  "2_map-andrade-port-of-entry-los-algodones-dentists.webp",
		"image3":  "3_molar-city-los-algodones-dental-stats.webp",
		"image4":  "4_los-algodones-history-dental-frontier-timeline.webp",
		"image5":  "5_los-algodones-dentist-advanced-care-equipment.webp",
		"image6":  "6_los-algodones-dental-treatments-implants-veneers.webp",
		"image7":  "7_los-algodones-dental-crown-procedure.webp",
		"image8":  "8_los-algodones-dental-implant-diagram.webp",
		"image9":  "9_los-algodones-porcelain-veneers-before-after.webp",
		"image10": "10_choose-quality-los-algodones-dental-clinic-guide.webp",
		"image11": "11_map-los-algodones-mexico-andrade-port-of-entry.webp",
		"image12": "12_los-algodones-border-crossing-dentist-options.webp",
		"image13": "13_entering-mexico-los-algodones-land-border-fmm.webp",
		"image14": "14_walking-map-us-customs-los-algodones-dentists.webp",
		"image15": "15_us-customs-checklist-los-algodones-dental-trip.webp",
		"image16": "16_navigating-molar-city-los-algodones-dental-tourism.webp",
		"image17": "17_los-algodones-hotels-dental-tourism-mexico.webp",
		"image18": "18_best-time-to-visit-los-algodones-dentist-weather.webp",
		"image19": "19_shopping-los-algodones-mexico-dental-visit.webp",
		"image20": "20_safety-in-los-algodones-mexico-dentist.webp",
	}
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Source:   "URL_ Los Algodones - Pillar Topic.md",
		Mount:    "#blog-content",
		AssetDir: "Webp",
		Images:   DefaultImages(),
		CoverImage: CoverImage{
			Src: "Webp/Cover-Image_los-algodones-dentist-senior-couple.webp",
			Alt: "Los Algodones dentist with senior couple - dental tourism in Mexico",
		},
		FetchTimeout: 0, // no timeout unless configured
		Listen:       "127.0.0.1:8080",
		LogLevel:     "info",
	}
}

// ConfigPath returns the path to the config file
// Can be overridden for testing
var ConfigPath = func() string {
	return filepath.Join(xdg.ConfigHome, "blogpipe", "config.yaml")
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads configuration from path, returning defaults if the file
// does not exist. Fields left empty in the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	def := DefaultConfig()
	raw := rawConfig{
		Source:       def.Source,
		Mount:        def.Mount,
		AssetDir:     def.AssetDir,
		CoverImage:   def.CoverImage,
		FetchTimeout: def.FetchTimeout.String(),
		Listen:       def.Listen,
		LogLevel:     def.LogLevel,
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	timeout, err := time.ParseDuration(raw.FetchTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid fetch_timeout format '%s': %w", raw.FetchTimeout, err)
	}

	images := raw.Images
	if images == nil {
		images = def.Images
	}

	cfg := &Config{
		Source:       raw.Source,
		Template:     raw.Template,
		Mount:        raw.Mount,
		AssetDir:     raw.AssetDir,
		Images:       images,
		CoverImage:   raw.CoverImage,
		FetchTimeout: timeout,
		Listen:       raw.Listen,
		LogLevel:     raw.LogLevel,
		OutputDir:    raw.OutputDir,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	return c.SaveFile(ConfigPath())
}

// SaveFile writes configuration to path
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := rawConfig{
		Source:       c.Source,
		Template:     c.Template,
		Mount:        c.Mount,
		AssetDir:     c.AssetDir,
		Images:       c.Images,
		CoverImage:   c.CoverImage,
		FetchTimeout: c.FetchTimeout.String(),
		Listen:       c.Listen,
		LogLevel:     c.LogLevel,
		OutputDir:    c.OutputDir,
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Mount) == "" {
		return fmt.Errorf("mount cannot be empty")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout cannot be negative")
	}
	for key, file := range c.Images {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("images: empty reference key")
		}
		if strings.TrimSpace(file) == "" {
			return fmt.Errorf("images: empty filename for %q", key)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level '%s': must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}
