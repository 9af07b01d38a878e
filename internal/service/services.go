package service

import (
	"github.com/MKhiriev/go-vault-wrench/internal/adapter"
	"github.com/MKhiriev/go-vault-wrench/internal/config"
	"github.com/MKhiriev/go-vault-wrench/internal/crypto"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
)

type Services struct {
	Auth      AuthService
	Directory DirectoryService
	Resources ResourceService
	Share     ShareService
}

func NewServices(serverAdapter adapter.ServerAdapter, keys crypto.KeyStore, cfg *config.ClientConfig, logger *logger.Logger) *Services {
	directory := NewDirectoryService(serverAdapter, logger)

	return &Services{
		Auth:      NewAuthService(serverAdapter, keys, cfg.Server, logger),
		Directory: directory,
		Resources: NewResourceService(serverAdapter, keys, logger),
		Share:     NewShareService(serverAdapter, keys, directory, logger),
	}
}
