package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-vault-wrench/internal/adapter"
	"github.com/MKhiriev/go-vault-wrench/internal/config"
	"github.com/MKhiriev/go-vault-wrench/internal/crypto"
	"github.com/MKhiriev/go-vault-wrench/internal/logger"
	"github.com/MKhiriev/go-vault-wrench/models"
)

// CheckResult is the outcome of one diagnostic check.
type CheckResult struct {
	// Name describes what was checked.
	Name string

	// Detail is extra context shown next to a passing check, e.g. the
	// fingerprint that was found. May be empty.
	Detail string

	// Err is nil for a passing check.
	Err error
}

// Diagnose runs the wrench installation checks in dependency order: the
// configuration, the private key file, the passphrase, a local encryption
// round-trip, the server connection, and the server key pin. Checks whose
// prerequisites already failed are skipped rather than reported as broken.
func Diagnose(ctx context.Context, cfg *config.ClientConfig, passphrase []byte, log *logger.Logger) []CheckResult {
	var results []CheckResult

	check := func(name string, fn func() (string, error)) bool {
		detail, err := fn()
		results = append(results, CheckResult{Name: name, Detail: detail, Err: err})
		return err == nil
	}

	configOK := check("configuration", func() (string, error) {
		switch {
		case cfg.Server.BaseURL == "":
			return "", fmt.Errorf("server base URL is not set")
		case cfg.Server.Fingerprint == "":
			return "", fmt.Errorf("server fingerprint is not pinned")
		case cfg.Keys.PrivateKeyPath == "":
			return "", fmt.Errorf("no private key path configured")
		}
		return cfg.Server.BaseURL, nil
	})

	var armored []byte
	keyFileOK := cfg.Keys.PrivateKeyPath != "" && check("private key file", func() (string, error) {
		var err error
		if armored, err = os.ReadFile(cfg.Keys.PrivateKeyPath); err != nil {
			return "", err
		}
		info, err := crypto.InspectPrivateKey(string(armored))
		if err != nil {
			return "", err
		}
		return info.Fingerprint, nil
	})

	var keys crypto.KeyStore
	if keyFileOK {
		check("passphrase unlocks the key", func() (string, error) {
			var err error
			keys, err = crypto.NewKeyStore(string(armored), passphrase, cfg.Keys.Fingerprint)
			return "", err
		})
	}

	if keys != nil {
		check("local encryption round-trip", func() (string, error) {
			ciphertext, err := keys.EncryptToSelf("wrench")
			if err != nil {
				return "", fmt.Errorf("encrypt: %w", err)
			}
			plaintext, err := keys.Decrypt(ciphertext)
			if err != nil {
				return "", fmt.Errorf("decrypt: %w", err)
			}
			if plaintext != "wrench" {
				return "", fmt.Errorf("round-trip produced different plaintext")
			}
			return "", nil
		})
	}

	if !configOK {
		return results
	}

	var serverKey models.ServerKey
	serverOK := check("server connection", func() (string, error) {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Server, log)
		if err != nil {
			return "", err
		}
		if serverKey, err = serverAdapter.FetchServerKey(ctx); err != nil {
			return "", err
		}
		return serverKey.Fingerprint, nil
	})

	if serverOK {
		check("server key matches the pinned fingerprint", func() (string, error) {
			if !strings.EqualFold(serverKey.Fingerprint, cfg.Server.Fingerprint) {
				return "", fmt.Errorf("server advertises %s, configuration pins %s",
					serverKey.Fingerprint, cfg.Server.Fingerprint)
			}
			return serverKey.Fingerprint, nil
		})
	}

	return results
}
