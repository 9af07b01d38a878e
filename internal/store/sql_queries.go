package store

import (
	sq "github.com/Masterminds/squirrel"
)

const resourceCacheTable = "resource_cache"

var resourceCacheColumns = []string{
	"id", "name", "uri", "username", "description", "tags", "cached_at",
}

// buildSearchQuery builds the offline search: every term must match at
// least one searchable column, LIKE is case-insensitive in SQLite for the
// ASCII range.
func buildSearchQuery(terms []string) (string, []any, error) {
	builder := sq.Select(resourceCacheColumns...).
		From(resourceCacheTable).
		OrderBy("name")

	for _, term := range terms {
		pattern := "%" + term + "%"
		builder = builder.Where(sq.Or{
			sq.Like{"name": pattern},
			sq.Like{"username": pattern},
			sq.Like{"uri": pattern},
			sq.Like{"description": pattern},
			sq.Like{"tags": pattern},
		})
	}

	return builder.ToSql()
}

func buildDeleteAllQuery() (string, []any, error) {
	return sq.Delete(resourceCacheTable).ToSql()
}

func buildRefreshedAtQuery() (string, []any, error) {
	return sq.Select("MAX(cached_at)").From(resourceCacheTable).ToSql()
}
