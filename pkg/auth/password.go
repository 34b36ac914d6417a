package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 10

// timingGuardHash is compared against when no stored hash exists so unknown
// accounts take as long to reject as wrong passwords.
var timingGuardHash, _ = bcrypt.GenerateFromPassword([]byte("dailywage-timing-guard"), passwordCost)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. An empty hash runs a
// comparison against a throwaway hash and reports false.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(timingGuardHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
