package store

import "github.com/MKhiriev/go-vault-wrench/internal/logger"

type Storages struct {
	ResourceCache ResourceCacheRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ResourceCache: NewResourceCacheRepository(db, logger),
	}
}
