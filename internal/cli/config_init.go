// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-wrench/internal/config"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the wrench configuration",
	}

	cmd.AddCommand(c.newConfigInitCmd())

	return cmd
}

func (c *CLI) newConfigInitCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Init asks for the server endpoint, the pinned server key fingerprint, the
private key location and the default share recipients, validates the answers,
and writes them as a JSON configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				var err error
				if outputPath, err = defaultConfigPath(); err != nil {
					return err
				}
			}

			cfg, err := c.promptConfig()
			if err != nil {
				return err
			}

			if err = os.MkdirAll(filepath.Dir(outputPath), 0o700); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err = config.WriteJSON(outputPath, cfg); err != nil {
				return err
			}

			fmt.Fprintln(c.out, color.GreenString("✓")+" configuration written to "+outputPath)
			fmt.Fprintln(c.errOut, tableNoteStyle.Render("set WRENCH_CONFIG="+outputPath+" or pass --config to use it"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "where to write the configuration file")

	return cmd
}

func defaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "wrench", "config.json"), nil
}

func (c *CLI) promptConfig() (*config.ClientConfig, error) {
	cfg := &config.ClientConfig{}

	baseURL, err := c.prompt.Input("Server URL", "https://vault.example.com")
	if err != nil {
		return nil, err
	}
	if err = validateServerURL(baseURL); err != nil {
		return nil, err
	}
	cfg.Server.BaseURL = strings.TrimSpace(baseURL)

	fingerprint, err := c.prompt.Input("Server key fingerprint", "40 hex characters")
	if err != nil {
		return nil, err
	}
	if cfg.Server.Fingerprint, err = normalizeFingerprintInput(fingerprint); err != nil {
		return nil, err
	}

	keyPath, err := c.prompt.Input("Private key path", "~/.config/wrench/private.asc")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(keyPath) == "" {
		return nil, fmt.Errorf("private key path must not be empty")
	}
	cfg.Keys.PrivateKeyPath = strings.TrimSpace(keyPath)

	cfg.Storage.DB.DSN, err = c.prompt.Input("Offline cache database", "empty to disable")
	if err != nil {
		return nil, err
	}

	owners, err := c.prompt.Input("Default owners", "comma-separated users or groups")
	if err != nil {
		return nil, err
	}
	cfg.Sharing.DefaultOwners = splitTags(owners)

	readers, err := c.prompt.Input("Default readers", "comma-separated users or groups")
	if err != nil {
		return nil, err
	}
	cfg.Sharing.DefaultReaders = splitTags(readers)

	return cfg, nil
}

func validateServerURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("server URL must not be empty")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("server URL must start with http:// or https://")
	}
	if parsed.Host == "" {
		return fmt.Errorf("server URL has no host")
	}
	return nil
}

// normalizeFingerprintInput upper-cases the fingerprint and strips the
// spaces GPG prints in its output.
func normalizeFingerprintInput(raw string) (string, error) {
	fp := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if fp == "" {
		return "", fmt.Errorf("server key fingerprint must not be empty")
	}
	for _, r := range fp {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return "", fmt.Errorf("fingerprint must be hexadecimal, got %q", raw)
		}
	}
	return fp, nil
}
