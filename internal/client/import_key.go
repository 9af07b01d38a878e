package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-vault-wrench/internal/crypto"
)

// ImportKey validates the armored private key file at srcPath and copies it
// to destPath, the location wrench reads the key from. The key is inspected
// but never unlocked, so no passphrase is needed to import.
func ImportKey(srcPath, destPath string) (crypto.PrivateKeyInfo, error) {
	armored, err := os.ReadFile(srcPath)
	if err != nil {
		return crypto.PrivateKeyInfo{}, fmt.Errorf("read key file %s: %w", srcPath, err)
	}

	info, err := crypto.InspectPrivateKey(string(armored))
	if err != nil {
		return crypto.PrivateKeyInfo{}, err
	}

	if err = os.MkdirAll(filepath.Dir(destPath), 0o700); err != nil {
		return crypto.PrivateKeyInfo{}, fmt.Errorf("create key directory: %w", err)
	}
	// the key file stays passphrase-protected, but keep it private anyway
	if err = os.WriteFile(destPath, armored, 0o600); err != nil {
		return crypto.PrivateKeyInfo{}, fmt.Errorf("write key file %s: %w", destPath, err)
	}

	return info, nil
}
