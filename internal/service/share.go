// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-wrench/internal/adapter"
	"github.com/MKhiriev/go-vault-wrench/internal/crypto"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/models"
)

type shareService struct {
	adapter   adapter.ServerAdapter
	keys      crypto.KeyStore
	directory DirectoryService
	logger    *logger.Logger
}

// NewShareService builds the share engine on top of the key store and the
// recipient directory.
func NewShareService(serverAdapter adapter.ServerAdapter, keys crypto.KeyStore, directory DirectoryService, logger *logger.Logger) ShareService {
	return &shareService{adapter: serverAdapter, keys: keys, directory: directory, logger: logger}
}

// Share implements [ShareService]. The flow is all-or-nothing: recipient
// resolution and re-encryption happen completely before the single server
// call, and any failure along the way leaves the resource untouched.
func (s *shareService) Share(ctx context.Context, session *SessionContext, resourceID string, recipientNames []string, permissionType models.PermissionType) (ShareReport, error) {
	if !session.IsAuthenticated() {
		return ShareReport{}, ErrNotAuthenticated
	}

	recipients, err := s.directory.Resolve(ctx, session, recipientNames)
	if err != nil {
		return ShareReport{}, err
	}

	existing, err := s.adapter.GetResourcePermissions(ctx, resourceID)
	if err != nil {
		return ShareReport{}, fmt.Errorf("fetch permissions of %s: %w", resourceID, err)
	}

	newRecipients, skipped := splitAlreadyPermitted(recipients, existing)
	if len(newRecipients) == 0 {
		s.logger.Info().Str("resource_id", resourceID).Msg("every recipient already holds a permission")
		return ShareReport{Skipped: skipped}, nil
	}

	grantedUsers, err := s.directory.Unfold(ctx, session, newRecipients)
	if err != nil {
		return ShareReport{}, err
	}

	// Users already reachable through an existing permission (directly or
	// via a permitted group) hold a secret copy; they need a permission
	// entry at most, never a second secret.
	coveredUsers, err := s.directory.Unfold(ctx, session, permissionRecipients(existing))
	if err != nil {
		return ShareReport{}, fmt.Errorf("unfold existing permissions of %s: %w", resourceID, err)
	}
	usersNeedingSecret := subtractUsers(grantedUsers, coveredUsers)

	plaintext, err := s.decryptResourceSecret(ctx, resourceID)
	if err != nil {
		return ShareReport{}, err
	}

	ciphertexts, err := s.EncryptForRecipients(plaintext, usersNeedingSecret)
	if err != nil {
		return ShareReport{}, err
	}

	req := models.ShareRequest{}
	for _, user := range usersNeedingSecret {
		req.Secrets = append(req.Secrets, models.Secret{
			ResourceID: resourceID,
			UserID:     user.ID,
			Data:       ciphertexts[user.ID],
		})
	}
	for _, recipient := range newRecipients {
		req.Permissions = append(req.Permissions, models.Permission{
			ResourceID: resourceID,
			Recipient:  recipient,
			Type:       permissionType,
		})
	}

	if err = s.adapter.ShareResource(ctx, resourceID, req); err != nil {
		return ShareReport{}, fmt.Errorf("share resource %s: %w", resourceID, err)
	}

	s.logger.Info().
		Str("resource_id", resourceID).
		Int("granted", len(usersNeedingSecret)).
		Int("skipped", len(skipped)).
		Msg("resource shared")

	return ShareReport{Granted: usersNeedingSecret, Skipped: skipped}, nil
}

// EncryptForRecipients implements [ShareService]. Every user is checked for
// a usable public key before any ciphertext is produced, so a bad recipient
// list costs no work and leaks nothing partial.
func (s *shareService) EncryptForRecipients(plaintext string, users []models.User) (map[string]models.SecretCiphertext, error) {
	for _, user := range users {
		if user.GpgKey == nil || user.GpgKey.ArmoredKey == "" {
			return nil, fmt.Errorf("%w: user %s has no public key", ErrUnresolvableRecipient, user.Username)
		}
	}

	mapping := make(map[string]models.SecretCiphertext, len(users))
	for _, user := range users {
		if _, dup := mapping[user.ID]; dup {
			continue
		}
		ciphertext, err := s.keys.Encrypt(plaintext, user.GpgKey.ArmoredKey)
		if err != nil {
			return nil, fmt.Errorf("encrypt for %s: %w", user.Username, err)
		}
		mapping[user.ID] = ciphertext
	}

	return mapping, nil
}

func (s *shareService) decryptResourceSecret(ctx context.Context, resourceID string) (string, error) {
	secret, err := s.adapter.GetResourceSecret(ctx, resourceID)
	if err != nil {
		return "", fmt.Errorf("fetch secret of %s: %w", resourceID, err)
	}

	plaintext, err := s.keys.Decrypt(secret.Data)
	if err != nil {
		return "", translateDecryptError(resourceID, err)
	}

	return plaintext, nil
}

// splitAlreadyPermitted separates the requested recipients into the ones
// that need a new permission and the ones that already hold one.
func splitAlreadyPermitted(requested []models.Recipient, existing []models.Permission) (fresh []models.Recipient, skipped []string) {
	permitted := make(map[string]struct{}, len(existing))
	for _, permission := range existing {
		permitted[permission.Recipient.ID()] = struct{}{}
	}

	for _, recipient := range requested {
		if _, held := permitted[recipient.ID()]; held {
			skipped = append(skipped, recipient.String())
			continue
		}
		fresh = append(fresh, recipient)
	}

	return fresh, skipped
}

func permissionRecipients(permissions []models.Permission) []models.Recipient {
	recipients := make([]models.Recipient, 0, len(permissions))
	for _, permission := range permissions {
		recipients = append(recipients, permission.Recipient)
	}
	return recipients
}

func subtractUsers(users, covered []models.User) []models.User {
	coveredIDs := make(map[string]struct{}, len(covered))
	for _, user := range covered {
		coveredIDs[user.ID] = struct{}{}
	}

	remaining := make([]models.User, 0, len(users))
	for _, user := range users {
		if _, held := coveredIDs[user.ID]; !held {
			remaining = append(remaining, user)
		}
	}
	return remaining
}
