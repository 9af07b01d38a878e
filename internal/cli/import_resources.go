// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-wrench/internal/client"
)

func (c *CLI) newImportResourcesCmd() *cobra.Command {
	var (
		tags    []string
		noShare bool
	)

	cmd := &cobra.Command{
		Use:   "import-resources <path>",
		Short: "Bulk-import resources from a tab-separated file",
		Long: `Import-resources reads a tab-separated file with five columns

    host<TAB>username<TAB>password<TAB>description<TAB>product

and creates one resource per line. The first line is treated as a header and
skipped. Pass "-" as the path to read from stdin.

The whole file is parsed and validated before anything is uploaded, so a
malformed line costs no partial import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			var src io.Reader
			if path == "-" {
				src = cmd.InOrStdin()
			} else {
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer file.Close()
				src = file
			}

			resources, err := client.ParseResourceImport(src, tags)
			if err != nil {
				return err
			}
			if len(resources) == 0 {
				return fmt.Errorf("%s holds no resources to import", path)
			}

			vault, err := c.openVault(ctx)
			if err != nil {
				return err
			}

			// stdin is spent on the import data, so no dialog can run there
			shareWithDefaults := false
			if !noShare && path != "-" && c.hasDefaultRecipients() {
				shareWithDefaults, err = c.prompt.Confirm(
					fmt.Sprintf("Share the %d imported resource(s) with the default recipients?", len(resources)), true)
				if err != nil {
					return err
				}
			}

			for _, resource := range resources {
				spin, cleanup := c.startSpinner("Uploading " + resource.Name + "...")
				created, err := vault.Add(ctx, resource)
				if err != nil {
					spin.FinalMSG = color.RedString("✗") + " upload of " + resource.Name + " failed"
					cleanup()
					return err
				}
				spin.FinalMSG = color.GreenString("✓") + " created " + color.YellowString(created.Name) + " (" + created.ID + ")"
				cleanup()

				if !shareWithDefaults {
					continue
				}
				if _, err = vault.ApplyDefaultShares(ctx, created.ID); err != nil {
					return err
				}
			}

			fmt.Fprintf(c.out, "%d resource(s) successfully imported.\n", len(resources))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag to attach to every imported resource; repeatable")
	cmd.Flags().BoolVar(&noShare, "no-share", false, "skip the default-recipients sharing dialog")

	return cmd
}
