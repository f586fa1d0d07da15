// Package fieldcrypt encrypts individual persisted fields (email, document
// number) with a key derived from a single startup passphrase.
package fieldcrypt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
)

const (
	keySize = sha256.Size // AES-256
	ivSize  = 16          // AES block size
)

// KeyMaterial holds the derived AES key and the fixed IV.
// It is immutable once derived.
type KeyMaterial struct {
	key [keySize]byte
	iv  [ivSize]byte
	set bool
}

// DeriveKeyMaterial hashes the passphrase with SHA-256. The digest is the key and
// its first 16 bytes are the IV, so the same passphrase always yields the same
// material across restarts.
func DeriveKeyMaterial(passphrase string) (KeyMaterial, error) {
	if passphrase == "" {
		return KeyMaterial{}, fmt.Errorf("%w: encryption passphrase is empty", apperrors.ErrConfiguration)
	}
	digest := sha256.Sum256([]byte(passphrase))

	km := KeyMaterial{key: digest, set: true}
	copy(km.iv[:], digest[:ivSize])
	return km, nil
}

// Fingerprint returns a short hex identifier of the key, safe to log.
func (km KeyMaterial) Fingerprint() string {
	if !km.set {
		return ""
	}
	sum := sha256.Sum256(km.key[:])
	return hex.EncodeToString(sum[:8])
}

// IsZero reports whether the material was never derived.
func (km KeyMaterial) IsZero() bool {
	return !km.set
}
