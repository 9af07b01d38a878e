package crypto

import (
	"testing"

	"github.com/ProtonMail/gopenpgp/v3/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-wrench/models"
)

func generateTestKey(t *testing.T, name, email string) *crypto.Key {
	t.Helper()

	key, err := crypto.PGP().KeyGeneration().
		AddUserId(name, email).
		New().
		GenerateKey()
	require.NoError(t, err)

	return key
}

func armorPrivate(t *testing.T, key *crypto.Key) string {
	t.Helper()

	armored, err := key.Armor()
	require.NoError(t, err)

	return armored
}

func newTestKeyStore(t *testing.T) KeyStore {
	t.Helper()

	key := generateTestKey(t, "ada", "ada@example.com")
	ks, err := NewKeyStore(armorPrivate(t, key), nil, "")
	require.NoError(t, err)

	return ks
}

func TestNewKeyStore(t *testing.T) {
	t.Run("unlocked key", func(t *testing.T) {
		// Arrange
		key := generateTestKey(t, "ada", "ada@example.com")

		// Act
		ks, err := NewKeyStore(armorPrivate(t, key), nil, "")

		// Assert
		require.NoError(t, err)
		assert.NotEmpty(t, ks.Fingerprint())
	})

	t.Run("public key material is rejected", func(t *testing.T) {
		// Arrange
		key := generateTestKey(t, "ada", "ada@example.com")
		publicArmored, err := key.GetArmoredPublicKey()
		require.NoError(t, err)

		// Act
		_, err = NewKeyStore(publicArmored, nil, "")

		// Assert
		assert.ErrorIs(t, err, ErrNoPrivateKey)
	})

	t.Run("fingerprint pin mismatch", func(t *testing.T) {
		// Arrange
		key := generateTestKey(t, "ada", "ada@example.com")

		// Act
		_, err := NewKeyStore(armorPrivate(t, key), nil, "DEADBEEFDEADBEEFDEADBEEFDEADBEEFDEADBEEF")

		// Assert
		assert.ErrorIs(t, err, ErrFingerprintMismatch)
	})

	t.Run("garbage armor", func(t *testing.T) {
		// Act
		_, err := NewKeyStore("not a key", nil, "")

		// Assert
		assert.Error(t, err)
	})
}

func TestKeyStore_EncryptDecrypt(t *testing.T) {
	t.Run("round trip to self", func(t *testing.T) {
		// Arrange
		ks := newTestKeyStore(t)

		// Act
		ciphertext, err := ks.EncryptToSelf("hunter2")
		require.NoError(t, err)
		plaintext, err := ks.Decrypt(ciphertext)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "hunter2", plaintext)
		assert.True(t, ciphertext.IsArmored())
		assert.NotContains(t, string(ciphertext), "hunter2")
	})

	t.Run("encrypt for recipient key", func(t *testing.T) {
		// Arrange
		sender := newTestKeyStore(t)
		recipientKey := generateTestKey(t, "bob", "bob@example.com")
		recipientStore, err := NewKeyStore(armorPrivate(t, recipientKey), nil, "")
		require.NoError(t, err)
		recipientPublic, err := recipientStore.ArmoredPublicKey()
		require.NoError(t, err)

		// Act
		ciphertext, err := sender.Encrypt("shared secret", recipientPublic)
		require.NoError(t, err)
		plaintext, err := recipientStore.Decrypt(ciphertext)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "shared secret", plaintext)
	})

	t.Run("foreign ciphertext cannot be opened", func(t *testing.T) {
		// Arrange
		alice := newTestKeyStore(t)
		mallory := newTestKeyStore(t)
		ciphertext, err := alice.EncryptToSelf("for alice only")
		require.NoError(t, err)

		// Act
		_, err = mallory.Decrypt(ciphertext)

		// Assert
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("two ciphertexts for the same plaintext differ", func(t *testing.T) {
		// Arrange
		ks := newTestKeyStore(t)

		// Act
		first, err := ks.EncryptToSelf("same plaintext")
		require.NoError(t, err)
		second, err := ks.EncryptToSelf("same plaintext")
		require.NoError(t, err)

		// Assert
		assert.NotEqual(t, first, second)
	})

	t.Run("non-armored ciphertext is rejected before decryption", func(t *testing.T) {
		// Arrange
		ks := newTestKeyStore(t)

		// Act
		_, err := ks.Decrypt(models.SecretCiphertext("plain garbage"))

		// Assert
		assert.ErrorIs(t, err, ErrMalformedCiphertext)
	})

	t.Run("malformed recipient key", func(t *testing.T) {
		// Arrange
		ks := newTestKeyStore(t)

		// Act
		_, err := ks.Encrypt("secret", "not an armored key")

		// Assert
		assert.ErrorIs(t, err, ErrEncryptionFailed)
	})
}

func TestKeyStore_ServerKey(t *testing.T) {
	t.Run("encrypt for server before import", func(t *testing.T) {
		// Arrange
		ks := newTestKeyStore(t)

		// Act
		_, err := ks.EncryptForServer("token")

		// Assert
		assert.ErrorIs(t, err, ErrNoServerKey)
		assert.Empty(t, ks.ServerFingerprint())
	})

	t.Run("import and encrypt for server", func(t *testing.T) {
		// Arrange
		ks := newTestKeyStore(t)
		serverKey := generateTestKey(t, "server", "server@example.com")
		serverStore, err := NewKeyStore(armorPrivate(t, serverKey), nil, "")
		require.NoError(t, err)
		serverPublic, err := serverStore.ArmoredPublicKey()
		require.NoError(t, err)

		// Act
		err = ks.ImportServerKey(serverPublic)
		require.NoError(t, err)
		ciphertext, err := ks.EncryptForServer("gpgauthv1.3.0|36|token|gpgauthv1.3.0")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, serverStore.Fingerprint(), ks.ServerFingerprint())
		plaintext, err := serverStore.Decrypt(models.SecretCiphertext(ciphertext))
		require.NoError(t, err)
		assert.Equal(t, "gpgauthv1.3.0|36|token|gpgauthv1.3.0", plaintext)
	})
}

func TestKeyStore_VerifyFingerprint(t *testing.T) {
	ks := newTestKeyStore(t)

	testCases := []struct {
		name     string
		observed string
		pinned   string
		want     bool
	}{
		{
			name:     "exact match",
			observed: "0C1F3C7A1F3C7A0C1F3C7A1F3C7A0C1F3C7A1F3C",
			pinned:   "0C1F3C7A1F3C7A0C1F3C7A1F3C7A0C1F3C7A1F3C",
			want:     true,
		},
		{
			name:     "case insensitive",
			observed: "0c1f3c7a1f3c7a0c1f3c7a1f3c7a0c1f3c7a1f3c",
			pinned:   "0C1F3C7A1F3C7A0C1F3C7A1F3C7A0C1F3C7A1F3C",
			want:     true,
		},
		{
			name:     "grouped with spaces",
			observed: "0C1F 3C7A 1F3C 7A0C 1F3C 7A1F 3C7A 0C1F 3C7A 1F3C",
			pinned:   "0C1F3C7A1F3C7A0C1F3C7A1F3C7A0C1F3C7A1F3C",
			want:     true,
		},
		{
			name:     "different keys",
			observed: "0C1F3C7A1F3C7A0C1F3C7A1F3C7A0C1F3C7A1F3C",
			pinned:   "DEADBEEFDEADBEEFDEADBEEFDEADBEEFDEADBEEF",
			want:     false,
		},
		{
			name:     "empty observed never matches",
			observed: "",
			pinned:   "",
			want:     false,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ks.VerifyFingerprint(test.observed, test.pinned))
		})
	}
}
