// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-wrench/internal/client"
)

func (c *CLI) newImportKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-key <path>",
		Short: "Import an armored private key file",
		Long: `Import-key validates the armored OpenPGP private key at the given path and
copies it into the location wrench is configured to read it from. The key is
never unlocked during import; the passphrase stays with you.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Keys.PrivateKeyPath == "" {
				return fmt.Errorf("no private key path configured, run wrench config init first")
			}

			info, err := client.ImportKey(args[0], cfg.Keys.PrivateKeyPath)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.out, color.GreenString("✓")+" key imported to "+cfg.Keys.PrivateKeyPath)
			fmt.Fprintln(c.out, "fingerprint: "+color.YellowString(info.Fingerprint))
			if !info.Locked {
				fmt.Fprintln(c.errOut, color.RedString("!")+" this key has no passphrase")
			}
			return nil
		},
	}
}
