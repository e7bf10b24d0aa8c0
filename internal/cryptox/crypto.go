// Package cryptox seals small secrets (access and refresh tokens) before they
// are written to the local database.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/dmitrijs2005/rentverse/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the per-database salt fed to DeriveKey.
const SaltSize = 16

const (
	keySize  = 32
	gcmNonce = 12
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey stretches secret into an AES-256 key with Argon2id.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, keySize)
}

// Sealer encrypts values with AES-GCM. The nonce is prepended to the
// ciphertext so a sealed value is self-contained.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a key from secret and salt and prepares an AES-GCM AEAD.
func NewSealer(secret, salt []byte) (*Sealer, error) {
	block, err := aes.NewCipher(DeriveKey(secret, salt))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

// Seal returns nonce||ciphertext for plaintext.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := common.GenerateRandByteArray(gcmNonce)
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal. A tampered value or a wrong key yields an error.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < gcmNonce {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := sealed[:gcmNonce], sealed[gcmNonce:]
	return s.aead.Open(nil, nonce, ciphertext, nil)
}
