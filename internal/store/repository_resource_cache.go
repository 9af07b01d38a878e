package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/models"
)

// tagSeparator joins tag slugs into a single cache column. Slugs cannot
// contain commas.
const tagSeparator = ","

// resourceCacheRepository is the SQLite-backed implementation of
// [ResourceCacheRepository]. It operates on the "resource_cache" table
// through the embedded [*DB] connection.
type resourceCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewResourceCacheRepository constructs a [ResourceCacheRepository] backed
// by the provided database connection and logger.
func NewResourceCacheRepository(db *DB, logger *logger.Logger) ResourceCacheRepository {
	return &resourceCacheRepository{DB: db, logger: logger}
}

// ReplaceAll implements [ResourceCacheRepository]. The delete and the bulk
// insert run in one transaction so a failed refresh keeps the previous
// snapshot intact.
func (r *resourceCacheRepository) ReplaceAll(ctx context.Context, resources []models.Resource) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "resourceCacheRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	deleteQuery, deleteArgs, err := buildDeleteAllQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		r.logger.Err(err).Str("func", "resourceCacheRepository.ReplaceAll").Msg("failed to clear cache")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(resources) > 0 {
		builder := sq.Insert(resourceCacheTable).Columns(resourceCacheColumns...)
		now := time.Now().UTC()
		for _, resource := range resources {
			builder = builder.Values(
				resource.ID,
				resource.Name,
				resource.URI,
				resource.Username,
				resource.Description,
				strings.Join(resource.Tags, tagSeparator),
				now,
			)
		}

		insertQuery, insertArgs, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			r.logger.Err(err).
				Str("func", "resourceCacheRepository.ReplaceAll").
				Int("resources", len(resources)).
				Msg("failed to insert cache rows")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.logger.Debug().Int("resources", len(resources)).Msg("resource cache refreshed")
	return nil
}

// Search implements [ResourceCacheRepository].
func (r *resourceCacheRepository) Search(ctx context.Context, terms []string) ([]models.Resource, error) {
	query, args, err := buildSearchQuery(terms)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "resourceCacheRepository.Search").Msg("failed to execute cache search")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var results []models.Resource
	for rows.Next() {
		var (
			resource models.Resource
			tags     string
			cachedAt time.Time
		)
		if err = rows.Scan(
			&resource.ID,
			&resource.Name,
			&resource.URI,
			&resource.Username,
			&resource.Description,
			&tags,
			&cachedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if tags != "" {
			resource.Tags = strings.Split(tags, tagSeparator)
		}
		results = append(results, resource)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return results, nil
}

// RefreshedAt implements [ResourceCacheRepository].
func (r *resourceCacheRepository) RefreshedAt(ctx context.Context) (time.Time, error) {
	query, args, err := buildRefreshedAtQuery()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var refreshedAt sql.NullTime
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&refreshedAt); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !refreshedAt.Valid {
		return time.Time{}, nil
	}

	return refreshedAt.Time, nil
}
