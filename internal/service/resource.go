package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-wrench/internal/adapter"
	"github.com/MKhiriev/go-vault-wrench/internal/crypto"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/models"
)

// dumpWorkers bounds concurrent secret fetches during a bulk dump. Decrypts
// share one immutable key store, so parallel reads are safe.
const dumpWorkers = 4

type resourceService struct {
	adapter adapter.ServerAdapter
	keys    crypto.KeyStore
	logger  *logger.Logger
}

// NewResourceService builds the resource search/decrypt/create service on
// top of the server adapter and the key store.
func NewResourceService(serverAdapter adapter.ServerAdapter, keys crypto.KeyStore, logger *logger.Logger) ResourceService {
	return &resourceService{adapter: serverAdapter, keys: keys, logger: logger}
}

// Search implements [ResourceService].
func (r *resourceService) Search(ctx context.Context, session *SessionContext, terms []string, fields []string) ([]models.Resource, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	resources, err := r.adapter.GetResources(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	if len(terms) == 0 {
		return resources, nil
	}

	matched := make([]models.Resource, 0, len(resources))
	for _, resource := range resources {
		if matchesAllTerms(resource, terms, fields) {
			matched = append(matched, resource)
		}
	}

	return matched, nil
}

// matchesAllTerms reports whether every term occurs, case-insensitively, in
// at least one searched field of the resource. An empty fields list searches
// every field, tags included.
func matchesAllTerms(resource models.Resource, terms []string, fields []string) bool {
	haystack := strings.ToLower(strings.Join(searchedValues(resource, fields), "\n"))

	for _, term := range terms {
		if !strings.Contains(haystack, strings.ToLower(term)) {
			return false
		}
	}

	return true
}

func searchedValues(resource models.Resource, fields []string) []string {
	if len(fields) == 0 {
		return append([]string{
			resource.Name,
			resource.Username,
			resource.URI,
			resource.Description,
		}, resource.Tags...)
	}

	values := make([]string, 0, len(fields))
	for _, field := range fields {
		switch field {
		case "name":
			values = append(values, resource.Name)
		case "username":
			values = append(values, resource.Username)
		case "uri":
			values = append(values, resource.URI)
		case "description":
			values = append(values, resource.Description)
		}
	}
	return values
}

// Decrypt implements [ResourceService].
func (r *resourceService) Decrypt(ctx context.Context, session *SessionContext, resource models.Resource) (models.DecryptedResource, error) {
	if !session.IsAuthenticated() {
		return models.DecryptedResource{}, ErrNotAuthenticated
	}

	ciphertext := resource.EncryptedSecret
	if ciphertext == "" {
		secret, err := r.adapter.GetResourceSecret(ctx, resource.ID)
		if err != nil {
			return models.DecryptedResource{}, fmt.Errorf("fetch secret of %s: %w", resource.ID, err)
		}
		ciphertext = secret.Data
		resource.EncryptedSecret = ciphertext
	}

	plaintext, err := r.keys.Decrypt(ciphertext)
	if err != nil {
		return models.DecryptedResource{}, translateDecryptError(resource.ID, err)
	}

	return models.DecryptedResource{Resource: resource, Secret: plaintext}, nil
}

// Add implements [ResourceService].
func (r *resourceService) Add(ctx context.Context, session *SessionContext, resource models.DecryptedResource) (models.Resource, error) {
	if !session.IsAuthenticated() {
		return models.Resource{}, ErrNotAuthenticated
	}
	if strings.TrimSpace(resource.Name) == "" {
		return models.Resource{}, errors.New("resource name is required")
	}

	ciphertext, err := r.keys.EncryptToSelf(resource.Secret)
	if err != nil {
		return models.Resource{}, fmt.Errorf("encrypt secret: %w", err)
	}

	resource.EncryptedSecret = ciphertext
	created, err := r.adapter.AddResource(ctx, resource.Resource)
	if err != nil {
		return models.Resource{}, fmt.Errorf("create resource: %w", err)
	}

	r.logger.Info().Str("resource_id", created.ID).Str("name", created.Name).Msg("resource created")
	return created, nil
}

// Dump implements [ResourceService]. Secrets are fetched and decrypted by a
// small worker pool; each record fails independently.
func (r *resourceService) Dump(ctx context.Context, session *SessionContext, favouriteOnly bool) ([]models.DecryptedResource, []DumpFailure, error) {
	if !session.IsAuthenticated() {
		return nil, nil, ErrNotAuthenticated
	}

	resources, err := r.adapter.GetResources(ctx, favouriteOnly)
	if err != nil {
		return nil, nil, fmt.Errorf("list resources: %w", err)
	}

	var (
		mu        sync.Mutex
		decrypted []models.DecryptedResource
		failures  []DumpFailure
		wg        sync.WaitGroup
	)

	jobs := make(chan models.Resource)

	for range dumpWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for resource := range jobs {
				record, err := r.Decrypt(ctx, session, resource)

				mu.Lock()
				if err != nil {
					failures = append(failures, DumpFailure{
						ResourceID:   resource.ID,
						ResourceName: resource.Name,
						Err:          err,
					})
				} else {
					decrypted = append(decrypted, record)
				}
				mu.Unlock()
			}
		}()
	}

	listingPos := make(map[string]int, len(resources))
	for i, resource := range resources {
		listingPos[resource.ID] = i
		jobs <- resource
	}
	close(jobs)
	wg.Wait()

	// Workers finish out of order; restore the listing order.
	sort.Slice(decrypted, func(i, j int) bool {
		return listingPos[decrypted[i].ID] < listingPos[decrypted[j].ID]
	})

	for _, failure := range failures {
		r.logger.Warn().
			Str("resource_id", failure.ResourceID).
			Err(failure.Err).
			Msg("resource skipped during dump")
	}

	return decrypted, failures, nil
}

func translateDecryptError(resourceID string, err error) error {
	switch {
	case errors.Is(err, crypto.ErrMalformedCiphertext):
		return fmt.Errorf("%w: resource %s", ErrMalformedSecret, resourceID)
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return fmt.Errorf("%w: resource %s", ErrForeignCiphertext, resourceID)
	default:
		return fmt.Errorf("decrypt secret of %s: %w", resourceID, err)
	}
}
