// Package password implements one-way credential hashing on top of bcrypt.
// The cost factor is fixed at bcrypt's default (10); the per-hash salt is
// generated by bcrypt and embedded in the encoded output.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const cost = bcrypt.DefaultCost

// Hash derives an encoded bcrypt hash from a plaintext password. It fails
// only on internal errors, never on valid input.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify recomputes the hash using the salt and parameters embedded in
// encoded and compares in constant time. A wrong password yields
// (false, nil); an error is returned only for a malformed encoded hash or
// an internal failure.
func Verify(plaintext, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
