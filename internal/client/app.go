package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-vault-wrench/internal/adapter"
	"github.com/MKhiriev/go-vault-wrench/internal/config"
	"github.com/MKhiriev/go-vault-wrench/internal/crypto"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/internal/service"
	"github.com/MKhiriev/go-vault-wrench/internal/store"
	"github.com/MKhiriev/go-vault-wrench/models"
)

// App is the runtime behind every wrench command. It holds the wired
// services, the optional local cache, and the session obtained by Login.
type App struct {
	cfg      *config.ClientConfig
	services *service.Services
	storages *store.Storages
	logger   *logger.Logger

	session *service.SessionContext
}

// NewApp assembles an [App] from already-built dependencies. storages may be
// nil when no local cache database is configured.
func NewApp(services *service.Services, storages *store.Storages, cfg *config.ClientConfig, logger *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		services: services,
		storages: storages,
		logger:   logger,
	}
}

// Bootstrap builds a ready-to-run [App] from the configuration: it reads and
// unlocks the private key, wires the server adapter and the services, and
// opens the local cache database when one is configured. A cache that fails
// to open degrades to online-only operation instead of failing the start.
func Bootstrap(ctx context.Context, cfg *config.ClientConfig, passphrase []byte, log *logger.Logger) (*App, error) {
	armored, err := os.ReadFile(cfg.Keys.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key %s: %w", cfg.Keys.PrivateKeyPath, err)
	}

	keys, err := crypto.NewKeyStore(string(armored), passphrase, cfg.Keys.Fingerprint)
	if err != nil {
		return nil, fmt.Errorf("load private key: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewServices(serverAdapter, keys, cfg, log)

	var storages *store.Storages
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
		if err != nil {
			log.Warn().Err(err).Msg("resource cache unavailable, running online-only")
		} else if err = db.Migrate(); err != nil {
			log.Warn().Err(err).Msg("resource cache migration failed, running online-only")
		} else {
			storages = store.NewStorages(db, log)
		}
	}

	return NewApp(services, storages, cfg, log), nil
}

// OpenCache opens the configured local cache database for offline use. No
// key material and no network access is involved.
func OpenCache(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*store.Storages, error) {
	if cfg.Storage.DB.DSN == "" {
		return nil, ErrCacheUnavailable
	}

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	return store.NewStorages(db, log), nil
}

// Login implements [Vault].
func (a *App) Login(ctx context.Context) error {
	session, err := a.services.Auth.Authenticate(ctx)
	if err != nil {
		return err
	}

	a.session = session
	a.logger.Debug().
		Str("fingerprint", session.UserFingerprint()).
		Msg("session established")
	return nil
}

// Search implements [Vault]. After a successful listing the local cache is
// refreshed with the full result set; refresh failures are logged and do not
// fail the search.
func (a *App) Search(ctx context.Context, terms []string, fields []string) ([]models.Resource, error) {
	if a.session == nil {
		return nil, ErrLoginRequired
	}

	found, err := a.services.Resources.Search(ctx, a.session, terms, fields)
	if err != nil {
		return nil, err
	}

	a.refreshCache(ctx, terms, found)

	return found, nil
}

// refreshCache mirrors a search result into the local cache. Only a search
// without terms sees the full listing, so only that one replaces the cache.
func (a *App) refreshCache(ctx context.Context, terms []string, found []models.Resource) {
	if a.storages == nil || len(terms) > 0 {
		return
	}
	if err := a.storages.ResourceCache.ReplaceAll(ctx, found); err != nil {
		a.logger.Warn().Err(err).Msg("resource cache refresh failed")
	}
}

// SearchOffline implements [Vault].
func (a *App) SearchOffline(ctx context.Context, terms []string) ([]models.Resource, time.Time, error) {
	if a.storages == nil {
		return nil, time.Time{}, ErrCacheUnavailable
	}

	found, err := a.storages.ResourceCache.Search(ctx, terms)
	if err != nil {
		return nil, time.Time{}, err
	}

	refreshedAt, err := a.storages.ResourceCache.RefreshedAt(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not read cache age")
		refreshedAt = time.Time{}
	}

	return found, refreshedAt, nil
}

// Reveal implements [Vault].
func (a *App) Reveal(ctx context.Context, resource models.Resource) (models.DecryptedResource, error) {
	if a.session == nil {
		return models.DecryptedResource{}, ErrLoginRequired
	}

	return a.services.Resources.Decrypt(ctx, a.session, resource)
}

// Add implements [Vault].
func (a *App) Add(ctx context.Context, resource models.DecryptedResource) (models.Resource, error) {
	if a.session == nil {
		return models.Resource{}, ErrLoginRequired
	}

	return a.services.Resources.Add(ctx, a.session, resource)
}

// Share implements [Vault].
func (a *App) Share(ctx context.Context, resourceID string, recipientNames []string, permissionType models.PermissionType) (service.ShareReport, error) {
	if a.session == nil {
		return service.ShareReport{}, ErrLoginRequired
	}

	return a.services.Share.Share(ctx, a.session, resourceID, recipientNames, permissionType)
}

// ApplyDefaultShares implements [Vault]. Owners are granted before readers;
// the first failing grant aborts the rest.
func (a *App) ApplyDefaultShares(ctx context.Context, resourceID string) ([]service.ShareReport, error) {
	if a.session == nil {
		return nil, ErrLoginRequired
	}

	grants := []struct {
		names      []string
		permission models.PermissionType
	}{
		{a.cfg.Sharing.DefaultOwners, models.PermissionOwner},
		{a.cfg.Sharing.DefaultReaders, models.PermissionRead},
	}

	var reports []service.ShareReport
	for _, grant := range grants {
		if len(grant.names) == 0 {
			continue
		}
		report, err := a.services.Share.Share(ctx, a.session, resourceID, grant.names, grant.permission)
		if err != nil {
			return reports, fmt.Errorf("share with default recipients %v: %w", grant.names, err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// Dump implements [Vault].
func (a *App) Dump(ctx context.Context, favouriteOnly bool) ([]models.DecryptedResource, []service.DumpFailure, error) {
	if a.session == nil {
		return nil, nil, ErrLoginRequired
	}

	return a.services.Resources.Dump(ctx, a.session, favouriteOnly)
}

// CurrentUser implements [Vault].
func (a *App) CurrentUser(ctx context.Context) (models.User, error) {
	if a.session == nil {
		return models.User{}, ErrLoginRequired
	}

	return a.services.Directory.CurrentUser(ctx, a.session)
}
