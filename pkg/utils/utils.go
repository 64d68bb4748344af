package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// NationalIDLength is the fixed number of digits in a national ID.
const NationalIDLength = 11

// HashPassword hashes a plain password with bcrypt at the given cost.
// A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsNationalID reports whether s is exactly NationalIDLength ASCII digits.
func IsNationalID(s string) bool {
	if len(s) != NationalIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MaskNationalID formats an 11-digit ID as XXX.XXX.XXX-XX. Anything else
// is returned unchanged.
func MaskNationalID(s string) string {
	if !IsNationalID(s) {
		return s
	}
	return s[:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:]
}
