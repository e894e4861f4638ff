// Package config handles the folio configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full folio configuration, stored in
// $XDG_CONFIG_HOME/folio/config.yml. Every field has a compiled-in
// default; the API token is deliberately absent, it comes from the
// ADS_API_TOKEN environment variable only.
type Config struct {
	Subject   SubjectConfig   `yaml:"subject"`
	ADS       ADSConfig       `yaml:"ads"`
	Store     StoreConfig     `yaml:"store"`
	Server    ServerConfig    `yaml:"server"`
	Highlight HighlightConfig `yaml:"highlight"`
}

// SubjectConfig identifies the researcher the portfolio belongs to.
type SubjectConfig struct {
	Name         string   `yaml:"name"`
	ORCID        string   `yaml:"orcid"`
	NameVariants []string `yaml:"name_variants"`
}

// ADSConfig points at the curated ADS library.
type ADSConfig struct {
	APIURL    string `yaml:"api_url,omitempty"` // override for testing
	LibraryID string `yaml:"library_id"`
}

// StoreConfig locates the curated publication list and its query index.
type StoreConfig struct {
	Publications string `yaml:"publications"` // JSONL, one entry per line
	Index        string `yaml:"index"`        // ephemeral SQLite index
	Files        string `yaml:"files"`        // root for attached PDFs
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// HighlightConfig sets the emphasis markers used by the author-name
// highlighter. Empty values fall back to the built-in span markers.
type HighlightConfig struct {
	Open  string `yaml:"open,omitempty"`
	Close string `yaml:"close,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "folio"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Subject: SubjectConfig{
			Name:  "Nayana A. J.",
			ORCID: "0000-0002-8070-5400",
			NameVariants: []string{
				"Nayana, A. J.",
				"Nayana A. J.",
				"Nayana A.J.",
				"Nayana AJ",
				"Nayana A J",
				"A. J. Nayana",
				"A J Nayana",
				"AJ Nayana",
			},
		},
		ADS: ADSConfig{
			LibraryID: "ucoKF0gWQImVPLgZJ5pdlw",
		},
		Store: StoreConfig{
			Publications: "publications.jsonl",
			Index:        "publications.db",
			Files:        "files",
		},
		Server: ServerConfig{
			Addr: ":8880",
		},
	}
}

// Path returns the default config file location. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/folio/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the config file at path, overlaying it on the defaults.
// An empty path uses the default location; a missing file returns the
// defaults without error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
