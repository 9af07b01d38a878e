// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-vault-wrench/models"
)

func (c *CLI) newShareCmd() *cobra.Command {
	var permission string

	cmd := &cobra.Command{
		Use:   "share <resource-id> <recipient>...",
		Short: "Share a resource with users or groups",
		Long: `Share re-encrypts the resource secret for every recipient and grants the
requested permission in one atomic server call. Recipients are usernames
(e-mail addresses) or group names; groups are unfolded into their members.
Recipients that already hold a permission on the resource are skipped.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			permissionType, err := parsePermission(permission)
			if err != nil {
				return err
			}

			vault, err := c.openVault(ctx)
			if err != nil {
				return err
			}

			resourceID, recipients := args[0], args[1:]

			spin, cleanup := c.startSpinner("Sharing " + resourceID + "...")
			report, err := vault.Share(ctx, resourceID, recipients, permissionType)
			if err != nil {
				spin.FinalMSG = color.RedString("✗") + " sharing failed, nothing was granted"
				cleanup()
				return err
			}
			spin.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" granted %s to %d user(s)", permission, len(report.Granted))
			cleanup()

			for _, user := range report.Granted {
				fmt.Fprintln(c.out, "  "+user.Username)
			}
			for _, skipped := range report.Skipped {
				fmt.Fprintln(c.errOut, tableNoteStyle.Render(skipped+" already has access, skipped"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&permission, "permission", "read", "permission to grant: read, update or owner")

	return cmd
}

// parsePermission maps the flag value onto the vault permission types.
func parsePermission(raw string) (models.PermissionType, error) {
	switch raw {
	case "read":
		return models.PermissionRead, nil
	case "update":
		return models.PermissionUpdate, nil
	case "owner":
		return models.PermissionOwner, nil
	default:
		return 0, fmt.Errorf("unknown permission %q, want read, update or owner", raw)
	}
}
