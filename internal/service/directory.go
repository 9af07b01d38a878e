package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-wrench/internal/adapter"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/models"
)

type directoryService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	// The user and group listings are fetched once per run and reused; the
	// directory does not change underneath a single invocation in any way
	// that matters for recipient resolution.
	mu        sync.Mutex
	loaded    bool
	users     []models.User
	groups    []models.Group
	usersByID map[string]models.User
}

// NewDirectoryService builds the recipient resolver.
func NewDirectoryService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) DirectoryService {
	return &directoryService{adapter: serverAdapter, logger: logger}
}

// Resolve implements [DirectoryService].
func (d *directoryService) Resolve(ctx context.Context, session *SessionContext, names []string) ([]models.Recipient, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if err := d.load(ctx); err != nil {
		return nil, err
	}

	recipients := make([]models.Recipient, 0, len(names))
	for _, name := range names {
		recipient, ok := d.lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q matches no username or group", ErrUnresolvableRecipient, name)
		}
		recipients = append(recipients, recipient)
	}

	return recipients, nil
}

// Unfold implements [DirectoryService].
func (d *directoryService) Unfold(ctx context.Context, session *SessionContext, recipients []models.Recipient) ([]models.User, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if err := d.load(ctx); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var users []models.User

	appendUser := func(user models.User) error {
		if _, dup := seen[user.ID]; dup {
			return nil
		}
		if user.GpgKey == nil || user.GpgKey.ArmoredKey == "" {
			return fmt.Errorf("%w: user %s has no public key", ErrUnresolvableRecipient, user.Username)
		}
		seen[user.ID] = struct{}{}
		users = append(users, user)
		return nil
	}

	for _, recipient := range recipients {
		switch {
		case recipient.User != nil:
			if err := appendUser(*recipient.User); err != nil {
				return nil, err
			}
		case recipient.Group != nil:
			group := *recipient.Group
			// Permission records carry only the group id; hydrate the
			// membership from the directory.
			if len(group.MemberIDs) == 0 {
				if known, ok := d.groupByID(group.ID); ok {
					group = known
				}
			}
			for _, memberID := range group.MemberIDs {
				member, ok := d.usersByID[memberID]
				if !ok {
					return nil, fmt.Errorf("%w: group %s member %s is unknown",
						ErrUnresolvableRecipient, group.Name, memberID)
				}
				if err := appendUser(member); err != nil {
					return nil, err
				}
			}
		}
	}

	return users, nil
}

// CurrentUser implements [DirectoryService].
func (d *directoryService) CurrentUser(ctx context.Context, session *SessionContext) (models.User, error) {
	if !session.IsAuthenticated() {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := d.adapter.GetCurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch current user: %w", err)
	}

	return user, nil
}

func (d *directoryService) load(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loaded {
		return nil
	}

	users, err := d.adapter.GetUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	groups, err := d.adapter.GetGroups(ctx)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}

	d.users = users
	d.groups = groups
	d.usersByID = make(map[string]models.User, len(users))
	for _, user := range users {
		d.usersByID[user.ID] = user
	}
	d.loaded = true

	d.logger.Debug().Int("users", len(users)).Int("groups", len(groups)).Msg("directory loaded")
	return nil
}

func (d *directoryService) groupByID(id string) (models.Group, bool) {
	for _, group := range d.groups {
		if group.ID == id {
			return group, true
		}
	}
	return models.Group{}, false
}

// lookup resolves a single name, usernames first so a group can never
// shadow a user's address.
func (d *directoryService) lookup(name string) (models.Recipient, bool) {
	for i := range d.users {
		if strings.EqualFold(d.users[i].Username, name) {
			return models.Recipient{User: &d.users[i]}, true
		}
	}
	for i := range d.groups {
		if strings.EqualFold(d.groups[i].Name, name) {
			return models.Recipient{Group: &d.groups[i]}, true
		}
	}
	return models.Recipient{}, false
}
