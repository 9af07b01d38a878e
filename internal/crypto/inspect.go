package crypto

import (
	"fmt"

	"github.com/ProtonMail/gopenpgp/v3/crypto"
)

// PrivateKeyInfo describes armored private key material without unlocking it.
type PrivateKeyInfo struct {
	Fingerprint string
	Locked      bool
}

// InspectPrivateKey parses armored key material and reports its fingerprint
// and whether a passphrase is needed to unlock it. The key stays locked.
//
// Returns [ErrNoPrivateKey] if the material holds only public key packets.
func InspectPrivateKey(armored string) (PrivateKeyInfo, error) {
	key, err := crypto.NewKeyFromArmored(armored)
	if err != nil {
		return PrivateKeyInfo{}, fmt.Errorf("parse private key: %w", err)
	}

	if !key.IsPrivate() {
		return PrivateKeyInfo{}, ErrNoPrivateKey
	}

	locked, err := key.IsLocked()
	if err != nil {
		return PrivateKeyInfo{}, fmt.Errorf("inspect private key: %w", err)
	}

	return PrivateKeyInfo{Fingerprint: key.GetFingerprint(), Locked: locked}, nil
}
