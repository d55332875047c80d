// Package password hashes and verifies user passwords.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns passwords into stored digests and checks them back.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// SHA256 is the default digest: lowercase hex of sha256(password), unsalted.
// Equal passwords produce equal digests.
type SHA256 struct{}

// Hash returns the 64-character hex digest of password.
func (SHA256) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify reports whether password matches digest.
func (h SHA256) Verify(digest, password string) bool {
	want, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(digest)), []byte(want)) == 1
}

// Bcrypt is an opt-in salted slow hash. Verify also accepts SHA256 digests so
// stores written with the default scheme keep working after switching.
type Bcrypt struct {
	Cost int
}

// Hash returns a bcrypt hash of password.
func (b Bcrypt) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether password matches digest.
func (Bcrypt) Verify(digest, password string) bool {
	if isLegacyDigest(digest) {
		return SHA256{}.Verify(digest, password)
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

func isLegacyDigest(digest string) bool {
	if len(digest) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(digest)
	return err == nil
}

// ByName returns the hasher registered under name ("sha256" or "bcrypt").
// An empty name selects SHA256.
func ByName(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", "sha256":
		return SHA256{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown password hash %q", name)
	}
}
