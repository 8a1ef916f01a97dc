package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

const TokenByteLength = 32 // 256 bits

// GenerateToken returns an opaque bearer token for the client and the
// sha256 hash that goes to storage. The plaintext token is never persisted.
func GenerateToken() (token, hash string, err error) {
	buf := make([]byte, TokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	return token, HashToken(token), nil
}

// HashToken maps a presented token to its storage form.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// VerifyToken compares a presented token against a stored hash in
// constant time.
func VerifyToken(token, storedHash string) bool {
	if token == "" || storedHash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(HashToken(token)), []byte(storedHash)) == 1
}
