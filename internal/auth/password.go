package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Пароли хранятся как hex(hash).hex(salt)
const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 16
)

// HashPassword хеширует пароль со случайной солью
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return hex.EncodeToString(hash) + "." + hex.EncodeToString(salt), nil
}

// CheckPassword сверяет пароль с сохранённым значением hash.salt
func CheckPassword(password, encoded string) (bool, error) {
	parts := strings.SplitN(encoded, ".", 2)
	if len(parts) != 2 {
		return false, fmt.Errorf("malformed password hash")
	}

	hash, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, fmt.Errorf("decode hash: %w", err)
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("decode salt: %w", err)
	}

	candidate, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}
