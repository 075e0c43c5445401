package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher turns IP addresses into stable, salted, truncated digests.
type Hasher struct {
	salt string
}

// NewHasher uses salt, or a random one when salt is empty. A random salt means
// unique-visitor counts reset on restart.
func NewHasher(salt string) (*Hasher, error) {
	if salt == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate hash salt: %w", err)
		}
		salt = hex.EncodeToString(buf)
	}
	return &Hasher{salt: salt}, nil
}

func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}
