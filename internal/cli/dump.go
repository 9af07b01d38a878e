// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	var (
		favouriteOnly bool
		outputPath    string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Export all resources with decrypted secrets as JSON",
		Long: `Dump decrypts every resource you can read and writes the result as a JSON
array. Records that cannot be decrypted are reported on stderr and skipped;
one undecryptable record never aborts the export.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			vault, err := c.openVault(ctx)
			if err != nil {
				return err
			}

			spin, cleanup := c.startSpinner("Decrypting resources...")
			decrypted, failures, err := vault.Dump(ctx, favouriteOnly)
			if err != nil {
				spin.FinalMSG = color.RedString("✗") + " dump failed"
				cleanup()
				return err
			}
			spin.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" decrypted %d resource(s)", len(decrypted))
			cleanup()

			for _, failure := range failures {
				fmt.Fprintln(c.errOut, color.RedString("✗")+fmt.Sprintf(" %s (%s): %v",
					failure.ResourceName, failure.ResourceID, failure.Err))
			}

			payload, err := json.MarshalIndent(decrypted, "", "  ")
			if err != nil {
				return fmt.Errorf("encode dump: %w", err)
			}
			payload = append(payload, '\n')

			if outputPath == "" {
				_, err = c.out.Write(payload)
				return err
			}
			// секреты в открытом виде, файл только для владельца
			if err = os.WriteFile(outputPath, payload, 0o600); err != nil {
				return fmt.Errorf("write dump file: %w", err)
			}
			fmt.Fprintln(c.errOut, color.GreenString("✓")+" dump written to "+outputPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&favouriteOnly, "favourite", false, "export only favourite resources")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the JSON dump to a file instead of stdout")

	return cmd
}
