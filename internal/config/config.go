// Package config loads application configuration from environment variables,
// an optional .env file, and an optional YAML config file.
//
// Sources in precedence order, highest to lowest:
//  1. Command-line flags (applied by the CLI layer)
//  2. Environment variables
//  3. .env file in the working directory
//  4. YAML config file
//  5. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	heralderrors "github.com/prherald/prherald/internal/errors"
)

// TokenEnvVar is the environment variable consulted when no token flag is given.
const TokenEnvVar = "GH_TOKEN"

// Config holds the tool configuration shared by all subcommands.
type Config struct {
	// GitHubURL is the base URL of a GitHub Enterprise API.
	// Empty means the public github.com API.
	GitHubURL string `yaml:"github_url"`
	// SMTPAddr is the host:port of the outgoing mail relay.
	SMTPAddr string `yaml:"smtp_addr"`
	// MailFrom is the sender address on notification mail.
	MailFrom string `yaml:"mail_from"`
	// DirectoryURL is the base URL of the user directory service.
	DirectoryURL string `yaml:"directory_url"`
}

// Load reads configuration from the sources described in the package doc and
// returns the merged Config. A missing .env file and a missing config file
// are both fine; defaults apply.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := &Config{
		SMTPAddr: "localhost:25",
		MailFrom: "prherald@localhost",
	}

	for _, path := range defaultConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := loadConfigFile(path, cfg); err != nil {
				return nil, err
			}
			break
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// ResolveToken returns the explicit token when non-empty, falling back to the
// GH_TOKEN environment variable. Returns ErrNoToken when neither is set.
func ResolveToken(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}
	return "", heralderrors.ErrNoToken
}

func defaultConfigPaths() []string {
	return []string{
		".prherald.yaml",
		".prherald.yml",
		filepath.Join(os.Getenv("HOME"), ".prherald", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".prherald", "config.yml"),
	}
}

// loadConfigFile reads and parses a YAML config file into cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies PRHERALD_ environment variables on top of cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PRHERALD_GITHUB_URL"); v != "" {
		cfg.GitHubURL = v
	}
	if v := os.Getenv("PRHERALD_SMTP_ADDR"); v != "" {
		cfg.SMTPAddr = v
	}
	if v := os.Getenv("PRHERALD_MAIL_FROM"); v != "" {
		cfg.MailFrom = v
	}
	if v := os.Getenv("PRHERALD_DIRECTORY_URL"); v != "" {
		cfg.DirectoryURL = v
	}
}
