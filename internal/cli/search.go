// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-wrench/internal/service"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	var (
		offline    bool
		copySecret bool
		showSecret bool
		fields     []string
	)

	cmd := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Find resources matching every term",
		Long: `Search lists the resources whose name, username, URI, description or tags
contain every given term, case-insensitively. Without terms it lists
everything you can see.

Repeat --field to restrict matching to specific fields, e.g.
"wrench search --field username --field uri root".

With --copy or --show the search must narrow down to exactly one resource;
its secret is then decrypted locally and copied to the clipboard or printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := validateSearchFields(fields); err != nil {
				return err
			}

			if offline {
				if copySecret || showSecret {
					return fmt.Errorf("secrets are not cached locally; --copy and --show need an online search")
				}
				if len(fields) > 0 {
					return fmt.Errorf("the local cache matches all fields; --field needs an online search")
				}
				return c.runOfflineSearch(cmd, args)
			}

			vault, err := c.openVault(ctx)
			if err != nil {
				return err
			}

			found, err := vault.Search(ctx, args, fields)
			if err != nil {
				return err
			}

			fmt.Fprint(c.out, renderResourceTable(found))

			if !copySecret && !showSecret {
				return nil
			}
			if len(found) == 0 {
				return service.ErrResourceNotFound
			}
			if len(found) > 1 {
				return fmt.Errorf("refusing to reveal a secret for %d matches, narrow the search", len(found))
			}

			decrypted, err := vault.Reveal(ctx, found[0])
			if err != nil {
				return err
			}

			if showSecret {
				fmt.Fprintln(c.out, decrypted.Secret)
				return nil
			}

			if err = c.copyToClip(decrypted.Secret); err != nil {
				return fmt.Errorf("copy secret to clipboard: %w", err)
			}
			fmt.Fprintln(c.errOut, color.GreenString("✓")+" secret of "+color.YellowString(decrypted.Name)+" copied to clipboard")
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "search the local cache instead of the server")
	cmd.Flags().BoolVar(&copySecret, "copy", false, "decrypt the single match and copy its secret to the clipboard")
	cmd.Flags().BoolVar(&showSecret, "show", false, "decrypt the single match and print its secret")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "only search in the given field (name, username, uri, description); repeatable")

	return cmd
}

func validateSearchFields(fields []string) error {
	for _, field := range fields {
		switch field {
		case "name", "username", "uri", "description":
		default:
			return fmt.Errorf("unknown field %q: use name, username, uri or description", field)
		}
	}
	return nil
}

func (c *CLI) runOfflineSearch(cmd *cobra.Command, terms []string) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	storages, err := c.openCache(ctx, cfg, c.logger)
	if err != nil {
		return err
	}

	found, err := storages.ResourceCache.Search(ctx, terms)
	if err != nil {
		return err
	}

	refreshedAt, err := storages.ResourceCache.RefreshedAt(ctx)
	if err != nil {
		refreshedAt = time.Time{}
	}

	fmt.Fprint(c.out, renderResourceTable(found))
	fmt.Fprintln(c.errOut, tableNoteStyle.Render(formatCacheAge(refreshedAt, time.Now())))
	return nil
}
