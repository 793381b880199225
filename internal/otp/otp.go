package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// TTL is how long a reset code stays valid after generation.
const TTL = 10 * time.Minute

// Generate returns a 6-digit reset code together with the sha256 hex digest
// that gets persisted. The plain code is only ever sent by mail.
func Generate() (code string, hash string, expires time.Time, err error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", "", time.Time{}, err
	}

	code = fmt.Sprintf("%06d", n.Int64()+100000)
	return code, Hash(code), time.Now().Add(TTL), nil
}

func Hash(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Matches compares a submitted code against the stored digest.
func Matches(code, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Hash(code)), []byte(storedHash)) == 1
}

// Expired reports whether the stored expiry has passed.
func Expired(expires *time.Time) bool {
	return expires == nil || time.Now().After(*expires)
}
