// Package cryptox implements password hashing for the account registry.
//
// Hashes are argon2id with a random per-user salt, encoded as
// "argon2id$<hex salt>$<hex key>" so the parameters can evolve without
// breaking stored records.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"notekeeper/internal/common"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltLen = 16

	hashPrefix = "argon2id"
)

// DeriveKey runs the argon2id KDF over password and salt.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword derives a key from the plaintext with a fresh random salt and
// returns the encoded hash string.
func HashPassword(password string) string {
	salt := common.GenerateRandByteArray(saltLen)
	key := DeriveKey([]byte(password), salt)
	return fmt.Sprintf("%s$%s$%s", hashPrefix, hex.EncodeToString(salt), hex.EncodeToString(key))
}

// VerifyPassword re-derives the key from the candidate plaintext and compares
// it to the encoded hash in constant time.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != hashPrefix {
		return false, common.ErrMalformedHash
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, common.ErrMalformedHash
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false, common.ErrMalformedHash
	}

	got := DeriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}
