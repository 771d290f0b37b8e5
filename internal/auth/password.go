package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is tuned for interactive login: slow enough to resist offline
// brute force, fast enough not to stall a request.
const bcryptCost = 12

// HashPassword derives a salted one-way hash of the plaintext. The salt is
// randomized per call, so hashing the same password twice yields different
// strings; both still verify.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored hash. A malformed
// hash is simply a mismatch, never an error surfaced to the caller.
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
