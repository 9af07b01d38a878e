// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-wrench/models"
)

func (c *CLI) newAddCmd() *cobra.Command {
	var noShare bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new resource in the vault",
		Long: `Add asks for the resource fields interactively, encrypts the secret to your
own key locally, and uploads the result. When default owners or readers are
configured, the new resource is offered to be shared with them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			vault, err := c.openVault(ctx)
			if err != nil {
				return err
			}

			resource, err := c.promptResource()
			if err != nil {
				return err
			}

			spin, cleanup := c.startSpinner("Uploading " + resource.Name + "...")
			created, err := vault.Add(ctx, resource)
			if err != nil {
				spin.FinalMSG = color.RedString("✗") + " upload failed"
				cleanup()
				return err
			}
			spin.FinalMSG = color.GreenString("✓") + " created " + color.YellowString(created.Name) + " (" + created.ID + ")"
			cleanup()

			if noShare || !c.hasDefaultRecipients() {
				return nil
			}

			share, err := c.prompt.Confirm("Share with the default recipients?", true)
			if err != nil || !share {
				return err
			}

			reports, err := vault.ApplyDefaultShares(ctx, created.ID)
			if err != nil {
				return err
			}
			for _, report := range reports {
				for _, user := range report.Granted {
					fmt.Fprintln(c.errOut, color.GreenString("✓")+" shared with "+user.Username)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noShare, "no-share", false, "skip the default-recipients sharing dialog")

	return cmd
}

func (c *CLI) hasDefaultRecipients() bool {
	return len(c.cfg.Sharing.DefaultOwners) > 0 || len(c.cfg.Sharing.DefaultReaders) > 0
}

// promptResource collects and validates the fields of a new resource. Name
// and secret are mandatory; the rest may stay empty.
func (c *CLI) promptResource() (models.DecryptedResource, error) {
	var resource models.DecryptedResource
	var err error

	resource.Name, err = c.prompt.Input("Name", "e.g. prod database")
	if err != nil {
		return models.DecryptedResource{}, err
	}
	if strings.TrimSpace(resource.Name) == "" {
		return models.DecryptedResource{}, fmt.Errorf("resource name must not be empty")
	}

	resource.Username, err = c.prompt.Input("Username", "")
	if err != nil {
		return models.DecryptedResource{}, err
	}

	resource.Secret, err = c.prompt.Secret("Secret")
	if err != nil {
		return models.DecryptedResource{}, err
	}
	if resource.Secret == "" {
		return models.DecryptedResource{}, fmt.Errorf("secret must not be empty")
	}

	resource.URI, err = c.prompt.Input("URI", "https://")
	if err != nil {
		return models.DecryptedResource{}, err
	}

	resource.Description, err = c.prompt.Input("Description", "")
	if err != nil {
		return models.DecryptedResource{}, err
	}

	tags, err := c.prompt.Input("Tags", "comma-separated")
	if err != nil {
		return models.DecryptedResource{}, err
	}
	resource.Tags = splitTags(tags)

	return resource, nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
