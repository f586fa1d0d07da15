package fieldcrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
)

// Cipher encrypts and decrypts optional string values.
type Cipher interface {
	Encrypt(plaintext *string) (*string, error)
	Decrypt(ciphertext *string) (*string, error)
}

// FieldCipher is AES-256-CBC with PKCS#7 padding and a fixed IV, encoded as
// standard base64.
//
// The fixed IV makes the cipher deterministic: equal plaintexts produce equal
// ciphertexts. Encrypted columns therefore keep working with equality lookups
// and unique indexes, at the cost of revealing which rows share a value.
type FieldCipher struct {
	block cipher.Block
	iv    [ivSize]byte
}

var _ Cipher = (*FieldCipher)(nil)

// NewFieldCipher builds a cipher from derived key material.
func NewFieldCipher(km KeyMaterial) (*FieldCipher, error) {
	if km.IsZero() {
		return nil, fmt.Errorf("%w: key material not derived", apperrors.ErrConfiguration)
	}
	block, err := aes.NewCipher(km.key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCrypto, err)
	}
	return &FieldCipher{block: block, iv: km.iv}, nil
}

// Encrypt returns nil for nil input.
func (c *FieldCipher) Encrypt(plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}
	out, err := c.EncryptString(*plaintext)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Decrypt returns nil for nil input.
func (c *FieldCipher) Decrypt(ciphertext *string) (*string, error) {
	if ciphertext == nil {
		return nil, nil
	}
	out, err := c.DecryptString(*ciphertext)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EncryptString encrypts a UTF-8 string.
func (c *FieldCipher) EncryptString(plaintext string) (string, error) {
	if c == nil || c.block == nil {
		return "", fmt.Errorf("%w: cipher has no key material", apperrors.ErrCrypto)
	}
	src := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	dst := make([]byte, len(src))
	cipher.NewCBCEncrypter(c.block, c.iv[:]).CryptBlocks(dst, src)
	return base64.StdEncoding.EncodeToString(dst), nil
}

// DecryptString reverses EncryptString. Malformed base64, a length that is not a
// whole number of blocks and bad padding all fail with ErrCrypto.
func (c *FieldCipher) DecryptString(ciphertext string) (string, error) {
	if c == nil || c.block == nil {
		return "", fmt.Errorf("%w: cipher has no key material", apperrors.ErrCrypto)
	}
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %v", apperrors.ErrCrypto, err)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", apperrors.ErrCrypto, len(raw))
	}
	dst := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv[:]).CryptBlocks(dst, raw)

	plain, err := pkcs7Unpad(dst, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, fmt.Errorf("%w: bad padding", apperrors.ErrCrypto)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", apperrors.ErrCrypto)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: bad padding", apperrors.ErrCrypto)
		}
	}
	return b[:len(b)-n], nil
}
