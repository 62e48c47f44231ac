package auth

import "github.com/alexedwards/argon2id"

// HashPassword derives an argon2id digest with a fresh random salt
// embedded in the encoded output.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams)
}

// VerifyPassword reports whether password matches the digest.
// A malformed digest is treated as a mismatch, never an error.
func VerifyPassword(password, digest string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, digest)
	if err != nil {
		return false
	}
	return match
}
