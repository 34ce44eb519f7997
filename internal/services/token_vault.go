package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	vaultKeySize   = 32
	vaultNonceSize = 24
)

var (
	ErrInvalidVaultKey = errors.New("token vault key must be 32 bytes, base64 encoded")
	ErrSealedTokenOpen = errors.New("failed to open sealed token")
)

// TokenVault seals aggregator access tokens before they are stored.
// Sealed values are the random nonce followed by the secretbox output.
type TokenVault struct {
	key [vaultKeySize]byte
}

// NewTokenVault decodes a base64 key
func NewTokenVault(encodedKey string) (TokenVaultInterface, error) {
	raw, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil || len(raw) != vaultKeySize {
		return nil, ErrInvalidVaultKey
	}

	vault := &TokenVault{}
	copy(vault.key[:], raw)
	return vault, nil
}

// GenerateVaultKey returns a new random key in the encoding NewTokenVault expects
func GenerateVaultKey() (string, error) {
	key := make([]byte, vaultKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("failed to generate vault key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

func (v *TokenVault) Seal(plaintext []byte) ([]byte, error) {
	var nonce [vaultNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &v.key), nil
}

func (v *TokenVault) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < vaultNonceSize+secretbox.Overhead {
		return nil, ErrSealedTokenOpen
	}

	var nonce [vaultNonceSize]byte
	copy(nonce[:], sealed[:vaultNonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[vaultNonceSize:], &nonce, &v.key)
	if !ok {
		return nil, ErrSealedTokenOpen
	}
	return plaintext, nil
}
