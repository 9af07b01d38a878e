// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the wrench command tree. Commands stay thin: they
// collect input, call the [client.Vault] runtime, and render the result.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-wrench/internal/client"
	"github.com/MKhiriev/go-vault-wrench/internal/config"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/internal/service"
	"github.com/MKhiriev/go-vault-wrench/internal/store"
	"github.com/MKhiriev/go-vault-wrench/models"
)

// vaultBuilder abstracts client.Bootstrap so command tests can inject a mock
// vault without touching key files or the network.
type vaultBuilder func(ctx context.Context, cfg *config.ClientConfig, passphrase []byte, log *logger.Logger) (client.Vault, error)

// cacheOpener abstracts client.OpenCache for the offline commands.
type cacheOpener func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*store.Storages, error)

// checkRunner abstracts client.Diagnose so the diagnose command can be
// tested with canned results.
type checkRunner func(ctx context.Context, cfg *config.ClientConfig, passphrase []byte, log *logger.Logger) []client.CheckResult

// CLI carries the state shared by every wrench command.
type CLI struct {
	cfg    *config.ClientConfig
	logger *logger.Logger
	out    io.Writer
	errOut io.Writer

	prompt     Prompter
	copyToClip func(string) error
	buildVault vaultBuilder
	openCache  cacheOpener
	runChecks  checkRunner
	buildInfo  models.AppBuildInfo

	configPath string

	// vault is memoized after the first successful login of the run.
	vault client.Vault
}

// New returns a CLI wired for real use: interactive prompts, the system
// clipboard, and client.Bootstrap behind the vault builder.
func New(buildInfo models.AppBuildInfo) *CLI {
	return &CLI{
		out:        os.Stdout,
		errOut:     os.Stderr,
		prompt:     newTeaPrompter(os.Stdout),
		copyToClip: clipboard.WriteAll,
		buildInfo:  buildInfo,
		buildVault: func(ctx context.Context, cfg *config.ClientConfig, passphrase []byte, log *logger.Logger) (client.Vault, error) {
			return client.Bootstrap(ctx, cfg, passphrase, log)
		},
		openCache: client.OpenCache,
		runChecks: client.Diagnose,
	}
}

// Execute parses arguments and runs the selected command.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *CLI) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wrench",
		Short: "wrench - a command-line client for a GPGAuth-protected password vault",
		Long: `wrench talks to a Passbolt-compatible password vault: it authenticates with
your OpenPGP key through the GPGAuth handshake, searches and decrypts stored
credentials, adds new ones, and shares them with users and groups.

Secrets are decrypted locally; only ciphertext travels over the wire.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to the JSON configuration file")

	root.AddCommand(
		c.newSearchCmd(),
		c.newAddCmd(),
		c.newShareCmd(),
		c.newDumpCmd(),
		c.newImportKeyCmd(),
		c.newImportResourcesCmd(),
		c.newDiagnoseCmd(),
		c.newConfigCmd(),
		c.newVersionCmd(),
	)

	return root
}

// loadConfig resolves the effective configuration once per invocation.
func (c *CLI) loadConfig() (*config.ClientConfig, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	cfg, err := config.GetClientConfig(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	c.cfg = cfg
	if c.logger == nil {
		c.logger = logger.NewClientLogger("wrench")
	}
	return cfg, nil
}

// openVault loads the key, runs the handshake, and memoizes the session. A
// challenge rejected with a prompted passphrase is re-prompted once; a wrong
// passphrase from the environment fails immediately.
func (c *CLI) openVault(ctx context.Context) (client.Vault, error) {
	if c.vault != nil {
		return c.vault, nil
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	passphrase := cfg.Keys.Passphrase
	interactive := passphrase == ""

	for attempt := 0; ; attempt++ {
		if interactive {
			passphrase, err = c.prompt.Secret("Passphrase for " + cfg.Keys.PrivateKeyPath)
			if err != nil {
				return nil, err
			}
		}

		vault, err := c.buildVault(ctx, cfg, []byte(passphrase), c.logger)
		if err != nil {
			return nil, err
		}

		err = c.login(ctx, vault)
		if err == nil {
			c.vault = vault
			return vault, nil
		}
		if interactive && attempt == 0 && errors.Is(err, service.ErrChallengeRejected) {
			fmt.Fprintln(c.errOut, color.RedString("✗")+" the server rejected the solved challenge, trying a fresh login")
			continue
		}
		return nil, err
	}
}

func (c *CLI) login(ctx context.Context, vault client.Vault) error {
	spin, cleanup := c.startSpinner("Authenticating with " + c.cfg.Server.BaseURL + "...")
	defer cleanup()

	if err := vault.Login(ctx); err != nil {
		spin.FinalMSG = color.RedString("✗") + " authentication failed"
		return err
	}

	spin.FinalMSG = color.GreenString("✓") + " authenticated"
	return nil
}
