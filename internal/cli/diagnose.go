// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *CLI) newDiagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Check the wrench installation",
		Long: `Diagnose verifies the pieces a working wrench installation needs: the
configuration, the private key file, the passphrase, local encryption, the
server connection, and the pinned server key. Each check reports OK or KO.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			passphrase := cfg.Keys.Passphrase
			if passphrase == "" && cfg.Keys.PrivateKeyPath != "" {
				if passphrase, err = c.prompt.Secret("Passphrase for " + cfg.Keys.PrivateKeyPath); err != nil {
					return err
				}
			}

			failed := 0
			for _, result := range c.runChecks(ctx, cfg, []byte(passphrase), c.logger) {
				line := "[" + color.GreenString("OK") + "] " + result.Name
				if result.Err != nil {
					failed++
					line = "[" + color.RedString("KO") + "] " + result.Name + ": " + result.Err.Error()
				} else if result.Detail != "" {
					line += ": " + result.Detail
				}
				fmt.Fprintln(c.out, line)
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
