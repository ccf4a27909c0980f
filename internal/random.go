package internal

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

const (
	TokenSecretSize  = 32
	tokenEncodedSize = 43 // base64url, no padding
)

func NewTokenSecret() ([TokenSecretSize]byte, error) {
	var secret [TokenSecretSize]byte
	_, err := rand.Read(secret[:])
	return secret, err
}

func EncodeToken(secret [TokenSecretSize]byte) string {
	return base64.RawURLEncoding.EncodeToString(secret[:])
}

func DecodeToken(token string) ([TokenSecretSize]byte, error) {
	var secret [TokenSecretSize]byte

	if len(token) != tokenEncodedSize {
		return secret, errors.New("invalid token size")
	}
	raw, err := base64.RawURLEncoding.Strict().DecodeString(token)
	if err != nil {
		return secret, err
	}
	if len(raw) != TokenSecretSize {
		return secret, errors.New("invalid token size")
	}

	copy(secret[:], raw)
	return secret, nil
}

// DigestToken maps a raw token to its storage key. Stores only ever see this
// digest; the raw string is never persisted.
func DigestToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
